package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/competition"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/timefmt"
)

// PanelState tags what a panel should render. Exactly one state applies
// per request; precedence is loading > error > empty > populated.
type PanelState string

const (
	PanelLoading   PanelState = "loading"
	PanelError     PanelState = "error"
	PanelEmpty     PanelState = "empty"
	PanelPopulated PanelState = "populated"
)

const (
	iconBall   = "ball"
	iconTrophy = "trophy"

	activityLimit = 6
)

type DashboardStats struct {
	TotalUpcoming        int
	MatchesThisWeek      int
	CompetitionsFollowed int
	UrgentCount          int
	NextMatch            *match.Upcoming
	LatestResult         *match.Result
}

type QuickActionStats struct {
	UpcomingCount int
	UrgentCount   int
	NextMatch     *match.Upcoming
}

// CompetitionSummary is emitted once per tracked competition, in the
// catalog's fixed order, even when the competition has no data.
type CompetitionSummary struct {
	Code          string
	Name          string
	UpcomingCount int
	NextMatch     *match.Upcoming
	LatestResult  *match.Result
}

type ActivityItem struct {
	ID          string
	Title       string
	Description string
	Timestamp   string
	Icon        string
}

// Panels carries the resolved state tag for each of the six panels.
type Panels struct {
	LiveResults        PanelState
	UpcomingMatches    PanelState
	PerformanceSummary PanelState
	QuickActions       PanelState
	ActiveLeagues      PanelState
	RecentActivity     PanelState
}

// Dashboard is the full per-request view model. Every field is derived
// from the latest snapshot plus a single "now" captured at the start of
// the request; nothing here is stored between requests.
type Dashboard struct {
	WelcomeMessage string
	LastUpdated    string
	ErrorMessage   string
	Stats          DashboardStats
	QuickActions   QuickActionStats
	Panels         Panels
	Upcoming       []match.Upcoming
	Results        []match.Result
	Summaries      []CompetitionSummary
	Activity       []ActivityItem
}

type QuickActionsView struct {
	State       PanelState
	LastUpdated string
	Stats       QuickActionStats
}

type ActivityView struct {
	State PanelState
	Items []ActivityItem
}

type CompetitionsView struct {
	State     PanelState
	Summaries []CompetitionSummary
}

type snapshotProvider interface {
	Latest() (match.Snapshot, bool)
}

// DashboardService assembles panel view models from the latest fixture
// snapshot. It never fetches; the refresher owns upstream traffic.
type DashboardService struct {
	snapshots snapshotProvider
	now       func() time.Time
}

func NewDashboardService(snapshots snapshotProvider) *DashboardService {
	return &DashboardService{
		snapshots: snapshots,
		now:       time.Now,
	}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	return s.build(), nil
}

func (s *DashboardService) QuickActionsPanel(ctx context.Context) (QuickActionsView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DashboardService.QuickActionsPanel")
	defer span.End()

	view := s.build()
	return QuickActionsView{
		State:       view.Panels.QuickActions,
		LastUpdated: view.LastUpdated,
		Stats:       view.QuickActions,
	}, nil
}

func (s *DashboardService) ActivityFeed(ctx context.Context) (ActivityView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DashboardService.ActivityFeed")
	defer span.End()

	view := s.build()
	return ActivityView{
		State: view.Panels.RecentActivity,
		Items: view.Activity,
	}, nil
}

func (s *DashboardService) CompetitionOverview(ctx context.Context) (CompetitionsView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DashboardService.CompetitionOverview")
	defer span.End()

	view := s.build()
	return CompetitionsView{
		State:     view.Panels.ActiveLeagues,
		Summaries: view.Summaries,
	}, nil
}

func (s *DashboardService) build() Dashboard {
	snap, ok := s.snapshots.Latest()
	now := s.now().UTC()
	loading := !ok

	upcoming := match.EnrichUpcomingAll(snap.Upcoming, now)
	match.SortUpcoming(upcoming)
	results := match.EnrichResultAll(snap.Results, now)
	match.SortResults(results)

	stats := DashboardStats{
		TotalUpcoming:        len(upcoming),
		MatchesThisWeek:      match.CountWithin(upcoming, now, match.WeekWindow),
		CompetitionsFollowed: match.DistinctCompetitions(upcoming),
		UrgentCount:          match.CountWithin(upcoming, now, match.UrgentWindow),
	}
	if len(upcoming) > 0 {
		next := upcoming[0]
		stats.NextMatch = &next
	}
	if len(results) > 0 {
		latest := results[0]
		stats.LatestResult = &latest
	}

	quick := QuickActionStats{
		UpcomingCount: stats.TotalUpcoming,
		UrgentCount:   stats.UrgentCount,
		NextMatch:     stats.NextMatch,
	}

	summaries := buildCompetitionSummaries(upcoming, results)
	activity := buildActivityItems(results)

	view := Dashboard{
		WelcomeMessage: welcomeMessage(loading, stats.UrgentCount, stats.TotalUpcoming),
		Stats:          stats,
		QuickActions:   quick,
		Upcoming:       upcoming,
		Results:        results,
		Summaries:      summaries,
		Activity:       activity,
	}
	if !loading {
		view.LastUpdated = timefmt.FormatRelativePast(now.Sub(snap.FetchedAt))
	}
	if snap.Err != nil {
		view.ErrorMessage = snap.Err.Error()
	}

	dataCount := len(upcoming) + len(results)
	view.Panels = Panels{
		LiveResults:        resolvePanelState(loading, snap.Err, len(results)),
		UpcomingMatches:    resolvePanelState(loading, snap.Err, len(upcoming)),
		PerformanceSummary: resolvePanelState(loading, snap.Err, dataCount),
		QuickActions:       resolvePanelState(loading, snap.Err, len(upcoming)),
		ActiveLeagues:      resolvePanelState(loading, snap.Err, dataCount),
		RecentActivity:     resolvePanelState(loading, snap.Err, len(activity)),
	}
	return view
}

// resolvePanelState is the one place the panel state machine lives.
func resolvePanelState(loading bool, err error, count int) PanelState {
	switch {
	case loading:
		return PanelLoading
	case err != nil:
		return PanelError
	case count == 0:
		return PanelEmpty
	default:
		return PanelPopulated
	}
}

func welcomeMessage(loading bool, urgent, total int) string {
	switch {
	case loading:
		return "Loading your matches..."
	case urgent == 1:
		return "1 match kicks off within the next 24 hours!"
	case urgent > 1:
		return fmt.Sprintf("%d matches kick off within the next 24 hours!", urgent)
	default:
		return fmt.Sprintf("You have %d upcoming matches to predict.", total)
	}
}

func buildCompetitionSummaries(upcoming []match.Upcoming, results []match.Result) []CompetitionSummary {
	upcomingByCode := match.GroupUpcomingByCompetition(upcoming)
	resultsByCode := match.GroupResultsByCompetition(results)

	tracked := competition.Tracked()
	summaries := make([]CompetitionSummary, 0, len(tracked))
	for _, comp := range tracked {
		summary := CompetitionSummary{
			Code: comp.Code,
			Name: comp.Name,
		}
		if group := upcomingByCode[comp.Code]; len(group) > 0 {
			summary.UpcomingCount = len(group)
			next := group[0]
			summary.NextMatch = &next
		}
		if group := resultsByCode[comp.Code]; len(group) > 0 {
			latest := group[0]
			summary.LatestResult = &latest
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func buildActivityItems(results []match.Result) []ActivityItem {
	limit := len(results)
	if limit > activityLimit {
		limit = activityLimit
	}
	items := make([]ActivityItem, 0, limit)
	for _, res := range results[:limit] {
		icon := iconTrophy
		if competition.IsPremier(res.CompetitionCode) {
			icon = iconBall
		}
		items = append(items, ActivityItem{
			ID:          res.ID,
			Title:       activityTitle(res),
			Description: competitionName(res.Fixture),
			Timestamp:   res.RelativeTime,
			Icon:        icon,
		})
	}
	return items
}

func activityTitle(res match.Result) string {
	return fmt.Sprintf("%s %s - %s %s",
		teamNameOrPlaceholder(res.HomeTeam.Name),
		scoreOrDash(res.HomeScore),
		scoreOrDash(res.AwayScore),
		teamNameOrPlaceholder(res.AwayTeam.Name),
	)
}

func competitionName(f match.Fixture) string {
	for _, comp := range competition.Tracked() {
		if comp.Code == f.CompetitionCode {
			return comp.Name
		}
	}
	if strings.TrimSpace(f.Competition) != "" {
		return f.Competition
	}
	return "TBD"
}

func teamNameOrPlaceholder(name string) string {
	if strings.TrimSpace(name) == "" {
		return "TBD"
	}
	return name
}

func scoreOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
