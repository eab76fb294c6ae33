package httpapi

import (
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/usecase"
)

type teamDTO struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type scoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type upcomingMatchDTO struct {
	ID              string    `json:"id"`
	Competition     string    `json:"competition"`
	CompetitionCode string    `json:"competitionCode"`
	HomeTeam        teamDTO   `json:"homeTeam"`
	AwayTeam        teamDTO   `json:"awayTeam"`
	Venue           string    `json:"venue,omitempty"`
	KickoffAt       time.Time `json:"kickoffAt"`
	KickoffLabel    string    `json:"kickoffLabel"`
	TimeUntil       string    `json:"timeUntil"`
	KickoffPassed   bool      `json:"kickoffPassed"`
	HasPrediction   bool      `json:"hasPrediction"`
	Prediction      *scoreDTO `json:"prediction,omitempty"`
}

type resultDTO struct {
	ID              string    `json:"id"`
	Competition     string    `json:"competition"`
	CompetitionCode string    `json:"competitionCode"`
	HomeTeam        teamDTO   `json:"homeTeam"`
	AwayTeam        teamDTO   `json:"awayTeam"`
	KickoffAt       time.Time `json:"kickoffAt"`
	KickoffLabel    string    `json:"kickoffLabel"`
	RelativeTime    string    `json:"relativeTime"`
	HomeScore       *int      `json:"homeScore"`
	AwayScore       *int      `json:"awayScore"`
	Prediction      *scoreDTO `json:"prediction,omitempty"`
}

type dashboardStatsDTO struct {
	TotalUpcoming        int               `json:"totalUpcoming"`
	MatchesThisWeek      int               `json:"matchesThisWeek"`
	CompetitionsFollowed int               `json:"competitionsFollowed"`
	UrgentCount          int               `json:"urgentCount"`
	NextMatch            *upcomingMatchDTO `json:"nextMatch,omitempty"`
	LatestResult         *resultDTO        `json:"latestResult,omitempty"`
}

type quickActionStatsDTO struct {
	UpcomingCount int               `json:"upcomingCount"`
	UrgentCount   int               `json:"urgentCount"`
	NextMatch     *upcomingMatchDTO `json:"nextMatch,omitempty"`
}

type competitionSummaryDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	UpcomingCount int               `json:"upcomingCount"`
	NextMatch     *upcomingMatchDTO `json:"nextMatch,omitempty"`
	LatestResult  *resultDTO        `json:"latestResult,omitempty"`
}

type activityItemDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Icon        string `json:"icon"`
}

type panelsDTO struct {
	LiveResults        string `json:"liveResults"`
	UpcomingMatches    string `json:"upcomingMatches"`
	PerformanceSummary string `json:"performanceSummary"`
	QuickActions       string `json:"quickActions"`
	ActiveLeagues      string `json:"activeLeagues"`
	RecentActivity     string `json:"recentActivity"`
}

type dashboardDTO struct {
	WelcomeMessage string                  `json:"welcomeMessage"`
	LastUpdated    string                  `json:"lastUpdated,omitempty"`
	ErrorMessage   string                  `json:"errorMessage,omitempty"`
	Stats          dashboardStatsDTO       `json:"stats"`
	QuickActions   quickActionStatsDTO     `json:"quickActions"`
	Panels         panelsDTO               `json:"panels"`
	Upcoming       []upcomingMatchDTO      `json:"upcomingMatches"`
	Results        []resultDTO             `json:"recentResults"`
	Summaries      []competitionSummaryDTO `json:"competitionSummaries"`
	Activity       []activityItemDTO       `json:"activityItems"`
}

type quickActionsViewDTO struct {
	State       string              `json:"state"`
	LastUpdated string              `json:"lastUpdated,omitempty"`
	Stats       quickActionStatsDTO `json:"stats"`
}

type activityViewDTO struct {
	State string            `json:"state"`
	Items []activityItemDTO `json:"items"`
}

type competitionsViewDTO struct {
	State     string                  `json:"state"`
	Summaries []competitionSummaryDTO `json:"summaries"`
}

func upcomingToDTO(m match.Upcoming) upcomingMatchDTO {
	return upcomingMatchDTO{
		ID:              m.ID,
		Competition:     m.Competition,
		CompetitionCode: m.CompetitionCode,
		HomeTeam:        teamDTO{Name: m.HomeTeam.Name, Logo: m.HomeTeam.Logo},
		AwayTeam:        teamDTO{Name: m.AwayTeam.Name, Logo: m.AwayTeam.Logo},
		Venue:           m.Venue,
		KickoffAt:       m.KickoffAt,
		KickoffLabel:    m.KickoffLabel,
		TimeUntil:       m.TimeUntil,
		KickoffPassed:   m.KickoffPassed,
		HasPrediction:   m.HasPrediction(),
		Prediction:      scoreToDTO(m.Prediction),
	}
}

func resultToDTO(res match.Result) resultDTO {
	return resultDTO{
		ID:              res.ID,
		Competition:     res.Competition,
		CompetitionCode: res.CompetitionCode,
		HomeTeam:        teamDTO{Name: res.HomeTeam.Name, Logo: res.HomeTeam.Logo},
		AwayTeam:        teamDTO{Name: res.AwayTeam.Name, Logo: res.AwayTeam.Logo},
		KickoffAt:       res.KickoffAt,
		KickoffLabel:    res.KickoffLabel,
		RelativeTime:    res.RelativeTime,
		HomeScore:       res.HomeScore,
		AwayScore:       res.AwayScore,
		Prediction:      scoreToDTO(res.Prediction),
	}
}

func scoreToDTO(score *match.Score) *scoreDTO {
	if score == nil {
		return nil
	}
	return &scoreDTO{Home: score.Home, Away: score.Away}
}

func upcomingPtrToDTO(m *match.Upcoming) *upcomingMatchDTO {
	if m == nil {
		return nil
	}
	dto := upcomingToDTO(*m)
	return &dto
}

func resultPtrToDTO(res *match.Result) *resultDTO {
	if res == nil {
		return nil
	}
	dto := resultToDTO(*res)
	return &dto
}

func statsToDTO(stats usecase.DashboardStats) dashboardStatsDTO {
	return dashboardStatsDTO{
		TotalUpcoming:        stats.TotalUpcoming,
		MatchesThisWeek:      stats.MatchesThisWeek,
		CompetitionsFollowed: stats.CompetitionsFollowed,
		UrgentCount:          stats.UrgentCount,
		NextMatch:            upcomingPtrToDTO(stats.NextMatch),
		LatestResult:         resultPtrToDTO(stats.LatestResult),
	}
}

func quickActionStatsToDTO(stats usecase.QuickActionStats) quickActionStatsDTO {
	return quickActionStatsDTO{
		UpcomingCount: stats.UpcomingCount,
		UrgentCount:   stats.UrgentCount,
		NextMatch:     upcomingPtrToDTO(stats.NextMatch),
	}
}

func summaryToDTO(summary usecase.CompetitionSummary) competitionSummaryDTO {
	return competitionSummaryDTO{
		ID:            summary.Code,
		Name:          summary.Name,
		UpcomingCount: summary.UpcomingCount,
		NextMatch:     upcomingPtrToDTO(summary.NextMatch),
		LatestResult:  resultPtrToDTO(summary.LatestResult),
	}
}

func activityToDTO(item usecase.ActivityItem) activityItemDTO {
	return activityItemDTO{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Timestamp:   item.Timestamp,
		Icon:        item.Icon,
	}
}

func dashboardToDTO(dashboard usecase.Dashboard) dashboardDTO {
	upcoming := make([]upcomingMatchDTO, 0, len(dashboard.Upcoming))
	for _, m := range dashboard.Upcoming {
		upcoming = append(upcoming, upcomingToDTO(m))
	}
	results := make([]resultDTO, 0, len(dashboard.Results))
	for _, res := range dashboard.Results {
		results = append(results, resultToDTO(res))
	}
	summaries := make([]competitionSummaryDTO, 0, len(dashboard.Summaries))
	for _, summary := range dashboard.Summaries {
		summaries = append(summaries, summaryToDTO(summary))
	}
	activity := make([]activityItemDTO, 0, len(dashboard.Activity))
	for _, item := range dashboard.Activity {
		activity = append(activity, activityToDTO(item))
	}

	return dashboardDTO{
		WelcomeMessage: dashboard.WelcomeMessage,
		LastUpdated:    dashboard.LastUpdated,
		ErrorMessage:   dashboard.ErrorMessage,
		Stats:          statsToDTO(dashboard.Stats),
		QuickActions:   quickActionStatsToDTO(dashboard.QuickActions),
		Panels: panelsDTO{
			LiveResults:        string(dashboard.Panels.LiveResults),
			UpcomingMatches:    string(dashboard.Panels.UpcomingMatches),
			PerformanceSummary: string(dashboard.Panels.PerformanceSummary),
			QuickActions:       string(dashboard.Panels.QuickActions),
			ActiveLeagues:      string(dashboard.Panels.ActiveLeagues),
			RecentActivity:     string(dashboard.Panels.RecentActivity),
		},
		Upcoming:  upcoming,
		Results:   results,
		Summaries: summaries,
		Activity:  activity,
	}
}

func quickActionsViewToDTO(view usecase.QuickActionsView) quickActionsViewDTO {
	return quickActionsViewDTO{
		State:       string(view.State),
		LastUpdated: view.LastUpdated,
		Stats:       quickActionStatsToDTO(view.Stats),
	}
}

func activityViewToDTO(view usecase.ActivityView) activityViewDTO {
	items := make([]activityItemDTO, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, activityToDTO(item))
	}
	return activityViewDTO{
		State: string(view.State),
		Items: items,
	}
}

func competitionsViewToDTO(view usecase.CompetitionsView) competitionsViewDTO {
	summaries := make([]competitionSummaryDTO, 0, len(view.Summaries))
	for _, summary := range view.Summaries {
		summaries = append(summaries, summaryToDTO(summary))
	}
	return competitionsViewDTO{
		State:     string(view.State),
		Summaries: summaries,
	}
}
