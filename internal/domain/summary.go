package domain

// TrendDirection labels how a theme's volume compares against the prior
// time window.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendStable  TrendDirection = "stable"
)

// ThemeCount is one entry of the ranked common-theme list.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// TrendingIssue is a theme with its current-window count and trend direction
// relative to the prior window of equal length.
type TrendingIssue struct {
	Issue string         `json:"issue"`
	Count int            `json:"count"`
	Trend TrendDirection `json:"trend"`
}

// FeedbackSummary is derived on demand from a snapshot of records. It is
// never stored as a source of truth.
type FeedbackSummary struct {
	TotalFeedback         int                    `json:"totalFeedback"`
	AverageRating         float64                `json:"averageRating"`
	SentimentDistribution map[SentimentLabel]int `json:"sentimentDistribution"`
	CategoryBreakdown     map[Category]int       `json:"categoryBreakdown"`
	UrgentIssues          int                    `json:"urgentIssues"`
	ResolvedIssues        int                    `json:"resolvedIssues"`
	CommonThemes          []ThemeCount           `json:"commonThemes"`
	TrendingIssues        []TrendingIssue        `json:"trendingIssues"`
}
