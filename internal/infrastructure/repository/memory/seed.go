package memory

import (
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/competition"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
)

// SeedFixtures builds a deterministic demo schedule around now: a handful
// of upcoming Süper Lig and Champions League fixtures plus recent results.
// Offsets are chosen so the dashboard shows an urgent match, a this-week
// match and a mix of predicted and unpredicted fixtures out of the box.
func SeedFixtures(now time.Time) []match.Fixture {
	score := func(home, away int) *match.Score {
		return &match.Score{Home: home, Away: away}
	}

	return []match.Fixture{
		{
			ID:              "tsl-gs-fb",
			CompetitionCode: competition.CodeSuperLig,
			Competition:     "Trendyol Süper Lig",
			KickoffAt:       now.Add(2 * time.Hour),
			HomeTeam:        match.Team{Name: "Galatasaray", Logo: "https://cdn.bay-tahmin.dev/logos/galatasaray.png"},
			AwayTeam:        match.Team{Name: "Fenerbahçe", Logo: "https://cdn.bay-tahmin.dev/logos/fenerbahce.png"},
			Venue:           "RAMS Park",
			Prediction:      score(2, 1),
		},
		{
			ID:              "tsl-bjk-ts",
			CompetitionCode: competition.CodeSuperLig,
			Competition:     "Trendyol Süper Lig",
			KickoffAt:       now.Add(30 * time.Hour),
			HomeTeam:        match.Team{Name: "Beşiktaş", Logo: "https://cdn.bay-tahmin.dev/logos/besiktas.png"},
			AwayTeam:        match.Team{Name: "Trabzonspor", Logo: "https://cdn.bay-tahmin.dev/logos/trabzonspor.png"},
			Venue:           "Tüpraş Stadyumu",
		},
		{
			ID:              "cl-gs-rm",
			CompetitionCode: competition.CodeChampionsLeag,
			Competition:     "UEFA Champions League",
			KickoffAt:       now.Add(4 * 24 * time.Hour),
			HomeTeam:        match.Team{Name: "Galatasaray", Logo: "https://cdn.bay-tahmin.dev/logos/galatasaray.png"},
			AwayTeam:        match.Team{Name: "Real Madrid", Logo: "https://cdn.bay-tahmin.dev/logos/realmadrid.png"},
			Venue:           "RAMS Park",
		},
		{
			ID:              "tsl-kas-gs",
			CompetitionCode: competition.CodeSuperLig,
			Competition:     "Trendyol Süper Lig",
			KickoffAt:       now.Add(9 * 24 * time.Hour),
			HomeTeam:        match.Team{Name: "Kasımpaşa", Logo: "https://cdn.bay-tahmin.dev/logos/kasimpasa.png"},
			AwayTeam:        match.Team{Name: "Galatasaray", Logo: "https://cdn.bay-tahmin.dev/logos/galatasaray.png"},
			Venue:           "Recep Tayyip Erdoğan Stadyumu",
		},

		{
			ID:              "tsl-fb-bjk-res",
			CompetitionCode: competition.CodeSuperLig,
			Competition:     "Trendyol Süper Lig",
			KickoffAt:       now.Add(-26 * time.Hour),
			HomeTeam:        match.Team{Name: "Fenerbahçe", Logo: "https://cdn.bay-tahmin.dev/logos/fenerbahce.png"},
			AwayTeam:        match.Team{Name: "Beşiktaş", Logo: "https://cdn.bay-tahmin.dev/logos/besiktas.png"},
			Venue:           "Chobani Stadyumu",
			Score:           score(2, 2),
			Prediction:      score(1, 1),
		},
		{
			ID:              "cl-fb-bay-res",
			CompetitionCode: competition.CodeChampionsLeag,
			Competition:     "UEFA Champions League",
			KickoffAt:       now.Add(-3 * 24 * time.Hour),
			HomeTeam:        match.Team{Name: "Fenerbahçe", Logo: "https://cdn.bay-tahmin.dev/logos/fenerbahce.png"},
			AwayTeam:        match.Team{Name: "Bayern München", Logo: "https://cdn.bay-tahmin.dev/logos/bayern.png"},
			Venue:           "Chobani Stadyumu",
			Score:           score(1, 3),
		},
		{
			ID:              "tsl-ts-kas-res",
			CompetitionCode: competition.CodeSuperLig,
			Competition:     "Trendyol Süper Lig",
			KickoffAt:       now.Add(-5 * 24 * time.Hour),
			HomeTeam:        match.Team{Name: "Trabzonspor", Logo: "https://cdn.bay-tahmin.dev/logos/trabzonspor.png"},
			AwayTeam:        match.Team{Name: "Kasımpaşa", Logo: "https://cdn.bay-tahmin.dev/logos/kasimpasa.png"},
			Venue:           "Papara Park",
			Score:           score(3, 0),
		},
	}
}
