package classifier

// ThemeEntry maps a coarse topical label to the keywords that trigger it.
// Entries are ordered so that theme output is deterministic.
type ThemeEntry struct {
	Label    string
	Keywords []string
}

// Lexicon holds the immutable word tables the classifier matches against.
// It is injected at construction time so tables can be swapped for other
// languages or domains without touching the algorithm.
type Lexicon struct {
	Positive        []string
	Negative        []string
	Themes          []ThemeEntry
	UrgencyTriggers []string
	FearTriggers    []string
	ProblemMarkers  []string
}

// DefaultLexicon returns the built-in English tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"amazing", "great", "excellent", "wonderful",
			"beautiful", "perfect", "love", "fantastic",
		},
		Negative: []string{
			"terrible", "awful", "horrible", "disappointing",
			"poor", "bad", "worst", "urgent",
		},
		Themes: []ThemeEntry{
			{Label: "infrastructure", Keywords: []string{"transport", "road", "facility", "maintenance", "connectivity"}},
			{Label: "safety", Keywords: []string{"safety", "security", "danger", "risk", "emergency"}},
			{Label: "hospitality", Keywords: []string{"staff", "service", "welcoming", "friendly", "helpful"}},
			{Label: "cleanliness", Keywords: []string{"clean", "dirty", "hygiene", "sanitation"}},
			{Label: "accessibility", Keywords: []string{"wheelchair", "disabled", "access", "barrier"}},
			{Label: "nature", Keywords: []string{"nature", "wildlife", "forest", "natural", "environment"}},
		},
		UrgencyTriggers: []string{
			"urgent", "emergency", "immediate", "critical", "dangerous",
		},
		FearTriggers: []string{
			"danger", "unsafe", "scary", "afraid", "risk", "emergency", "threat",
		},
		ProblemMarkers: []string{
			"problem", "issue",
		},
	}
}
