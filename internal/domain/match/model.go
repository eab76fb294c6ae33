package match

import "time"

// Team identifies one side of a fixture. Logo is an opaque URL or asset
// identifier supplied by the upstream feed.
type Team struct {
	Name string
	Logo string
}

// Score holds a final or predicted scoreline.
type Score struct {
	Home int
	Away int
}

// Fixture is one scheduled or completed match in a tracked competition,
// exactly as delivered by the upstream source. Score is nil until the match
// has finished; Prediction is nil when the user has not saved one.
type Fixture struct {
	ID              string
	CompetitionCode string
	Competition     string
	KickoffAt       time.Time
	HomeTeam        Team
	AwayTeam        Team
	Venue           string
	Score           *Score
	Prediction      *Score
}

// HasPrediction reports whether the user saved a prediction for this fixture.
func (f Fixture) HasPrediction() bool {
	return f.Prediction != nil
}
