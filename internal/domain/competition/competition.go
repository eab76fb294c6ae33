package competition

const (
	CodeSuperLig      = "TSL"
	CodeChampionsLeag = "CL"
)

// Competition is one of the fixed set of competitions the dashboard follows.
// Display names are owned here, not by the upstream data source.
type Competition struct {
	Code    string
	Name    string
	Premier bool
}

var tracked = []Competition{
	{Code: CodeSuperLig, Name: "Trendyol Süper Lig", Premier: true},
	{Code: CodeChampionsLeag, Name: "UEFA Champions League"},
}

// Tracked returns the followed competitions in their fixed display order.
func Tracked() []Competition {
	out := make([]Competition, len(tracked))
	copy(out, tracked)
	return out
}

// Codes returns the tracked competition codes in display order.
func Codes() []string {
	out := make([]string, 0, len(tracked))
	for _, c := range tracked {
		out = append(out, c.Code)
	}
	return out
}

// IsPremier reports whether code identifies the premier domestic competition.
func IsPremier(code string) bool {
	for _, c := range tracked {
		if c.Code == code {
			return c.Premier
		}
	}
	return false
}
