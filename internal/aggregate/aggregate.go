// Package aggregate computes cross-record statistics over a snapshot of
// feedback records. Summaries are derived values: they are recomputed on
// demand and never stored as a source of truth.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/metrics"
)

const topThemeCount = 5

// Engine computes FeedbackSummary values. The trend window length controls
// how far back the current and prior comparison windows reach.
type Engine struct {
	clock       clockwork.Clock
	trendWindow time.Duration
}

// New creates an aggregation engine. trendWindow is the length of each of
// the two comparison windows used for trending issues.
func New(clock clockwork.Clock, trendWindow time.Duration) *Engine {
	return &Engine{clock: clock, trendWindow: trendWindow}
}

// Summarize computes a FeedbackSummary over any record snapshot (the full
// store or a filtered subset). An empty snapshot yields all-zero counts and
// an average rating of 0, never NaN.
func (e *Engine) Summarize(records []*domain.FeedbackRecord) domain.FeedbackSummary {
	defer metrics.SummariesComputedTotal.Inc()

	summary := domain.FeedbackSummary{
		TotalFeedback:         len(records),
		SentimentDistribution: make(map[domain.SentimentLabel]int),
		CategoryBreakdown:     make(map[domain.Category]int),
		CommonThemes:          []domain.ThemeCount{},
		TrendingIssues:        []domain.TrendingIssue{},
	}

	if len(records) == 0 {
		return summary
	}

	ratingSum := 0
	themeCounts := make(map[string]int)
	var themeOrder []string // first-seen order for stable tie-breaks

	for _, record := range records {
		ratingSum += record.Rating

		label := record.Sentiment.Overall
		if !label.Valid() {
			label = domain.SentimentNeutral
		}
		summary.SentimentDistribution[label]++
		summary.CategoryBreakdown[record.Category]++

		if record.Sentiment.Urgency == domain.UrgencyHigh {
			summary.UrgentIssues++
		}
		if record.Status == domain.StatusResolved {
			summary.ResolvedIssues++
		}

		for _, theme := range record.Sentiment.Themes {
			if _, seen := themeCounts[theme]; !seen {
				themeOrder = append(themeOrder, theme)
			}
			themeCounts[theme]++
		}
	}

	summary.AverageRating = math.Round(float64(ratingSum)/float64(len(records))*10) / 10
	summary.CommonThemes = rankThemes(themeCounts, themeOrder)
	summary.TrendingIssues = e.trendingIssues(records, themeOrder)

	return summary
}

// rankThemes sorts themes by count descending, breaking ties by first-seen
// order, and returns the top 5.
func rankThemes(counts map[string]int, order []string) []domain.ThemeCount {
	firstSeen := make(map[string]int, len(order))
	for i, theme := range order {
		firstSeen[theme] = i
	}

	ranked := make([]domain.ThemeCount, 0, len(counts))
	for _, theme := range order {
		ranked = append(ranked, domain.ThemeCount{Theme: theme, Count: counts[theme]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Theme] < firstSeen[ranked[j].Theme]
	})

	if len(ranked) > topThemeCount {
		ranked = ranked[:topThemeCount]
	}
	return ranked
}

// trendingIssues compares per-theme counts in the current window against the
// prior window of equal length. With no prior-window data every theme is
// stable: trend labels are computed from retained history, never fabricated.
func (e *Engine) trendingIssues(records []*domain.FeedbackRecord, themeOrder []string) []domain.TrendingIssue {
	now := e.clock.Now()
	currentStart := now.Add(-e.trendWindow)
	priorStart := now.Add(-2 * e.trendWindow)

	current := make(map[string]int)
	prior := make(map[string]int)
	priorHasData := false

	for _, record := range records {
		ts := record.Timestamp
		var bucket map[string]int
		switch {
		case !ts.Before(currentStart):
			bucket = current
		case !ts.Before(priorStart):
			bucket = prior
			priorHasData = true
		default:
			continue
		}
		for _, theme := range record.Sentiment.Themes {
			bucket[theme]++
		}
	}

	issues := make([]domain.TrendingIssue, 0, len(current))
	for _, theme := range themeOrder {
		count, ok := current[theme]
		if !ok {
			continue
		}
		trend := domain.TrendStable
		if priorHasData {
			switch {
			case count > prior[theme]:
				trend = domain.TrendRising
			case count < prior[theme]:
				trend = domain.TrendFalling
			}
		}
		issues = append(issues, domain.TrendingIssue{Issue: theme, Count: count, Trend: trend})
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Count > issues[j].Count
	})
	return issues
}
