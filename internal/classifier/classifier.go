// Package classifier implements the deterministic, lexicon-and-rule based
// sentiment classifier. No model, no randomness: every result is a pure
// function of the comment text and the rating, which keeps classification
// fast, auditable, and easy to unit test.
package classifier

import (
	"strings"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
)

const (
	maxKeyPhrases    = 5
	minPhraseLen     = 10
	maxPhraseLen     = 30
	baseConfidence   = 0.8
	confidencePerHit = 0.03
)

// Classifier scores free-form comments against its lexicon tables.
// Classify is pure and safe for unlimited concurrent use.
type Classifier struct {
	lex Lexicon
}

// New creates a Classifier with the given lexicon.
func New(lex Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// NewDefault creates a Classifier with the built-in English lexicon.
func NewDefault() *Classifier {
	return New(DefaultLexicon())
}

// Classify turns a comment and rating into a SentimentResult. It is total:
// pathological input (empty comment, out-of-range rating) degrades to a
// neutral, low-confidence result rather than failing, so feedback intake is
// never blocked by the scoring step.
func (c *Classifier) Classify(comment string, rating int) domain.SentimentResult {
	if rating < 1 {
		rating = 1
	} else if rating > 5 {
		rating = 5
	}
	lower := strings.ToLower(comment)

	overall, score := ratingBaseline(rating)

	posHits := countHits(lower, c.lex.Positive)
	negHits := countHits(lower, c.lex.Negative)
	switch {
	case posHits > negHits:
		overall = domain.SentimentPositive
		score = max(score, 0.40+float64(posHits)*0.15)
	case negHits > posHits:
		overall = domain.SentimentNegative
		score = min(score, -0.40-float64(negHits)*0.15)
	}
	score = clamp(score, -1, 1)

	themes := c.matchThemes(lower)
	urgency := c.urgency(lower, rating)

	result := domain.SentimentResult{
		Overall:           overall,
		Score:             score,
		Confidence:        confidence(len(comment), posHits+negHits),
		Emotions:          c.emotions(lower, overall, posHits, negHits),
		KeyPhrases:        extractKeyPhrases(comment),
		Themes:            themes,
		Urgency:           urgency,
		ActionRequired:    urgency == domain.UrgencyHigh || rating <= 2 || strings.Contains(lower, "urgent"),
		SuggestedCategory: suggestCategory(themes),
	}
	return result
}

// ratingBaseline maps the star rating to a polarity and starting score:
// rating 4 → 0.30, 5 → 0.65, 2 → −0.30, 1 → −0.65, 3 → 0.
func ratingBaseline(rating int) (domain.SentimentLabel, float64) {
	switch {
	case rating >= 4:
		return domain.SentimentPositive, 0.30 + float64(rating-4)*0.35
	case rating <= 2:
		return domain.SentimentNegative, -0.30 - float64(2-rating)*0.35
	default:
		return domain.SentimentNeutral, 0
	}
}

// countHits sums occurrences of every lexicon word in the folded comment.
func countHits(lower string, words []string) int {
	total := 0
	for _, w := range words {
		total += strings.Count(lower, w)
	}
	return total
}

// confidence replaces the original jitter term with a deterministic function
// of input length and lexicon hits, bounded to [0.8, 1.0].
func confidence(commentLen, hits int) float64 {
	extra := confidencePerHit*float64(hits) + 0.001*float64(commentLen%50)
	return clamp(baseConfidence+extra, baseConfidence, 1.0)
}

func (c *Classifier) matchThemes(lower string) []string {
	var themes []string
	for _, entry := range c.lex.Themes {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				themes = append(themes, entry.Label)
				break
			}
		}
	}
	return themes
}

func (c *Classifier) urgency(lower string, rating int) domain.Urgency {
	for _, trigger := range c.lex.UrgencyTriggers {
		if strings.Contains(lower, trigger) {
			return domain.UrgencyHigh
		}
	}
	if rating == 1 {
		return domain.UrgencyHigh
	}
	if rating == 2 {
		return domain.UrgencyMedium
	}
	for _, marker := range c.lex.ProblemMarkers {
		if strings.Contains(lower, marker) {
			return domain.UrgencyMedium
		}
	}
	return domain.UrgencyLow
}

// emotions derives the six-dimension vector from the overall polarity, then
// applies keyword boosts. Any fear-trigger word pushes fear into [0.5, 0.8]
// regardless of overall sentiment.
func (c *Classifier) emotions(lower string, overall domain.SentimentLabel, posHits, negHits int) domain.EmotionScores {
	var e domain.EmotionScores
	switch overall {
	case domain.SentimentPositive:
		e = domain.EmotionScores{
			Joy:      clamp(0.65+0.05*float64(posHits), 0, 1),
			Sadness:  0.05,
			Anger:    0.05,
			Fear:     0.05,
			Surprise: 0.25,
			Disgust:  0.02,
		}
	case domain.SentimentNegative:
		e = domain.EmotionScores{
			Joy:      0.05,
			Sadness:  clamp(0.55+0.05*float64(negHits), 0, 1),
			Anger:    clamp(0.45+0.05*float64(negHits), 0, 1),
			Fear:     0.15,
			Surprise: 0.15,
			Disgust:  clamp(0.35+0.05*float64(negHits), 0, 1),
		}
	default:
		e = domain.EmotionScores{
			Joy:      0.2,
			Sadness:  0.15,
			Anger:    0.1,
			Fear:     0.1,
			Surprise: 0.2,
			Disgust:  0.05,
		}
	}

	fearHits := countHits(lower, c.lex.FearTriggers)
	if fearHits > 0 {
		boosted := clamp(0.5+0.1*float64(fearHits-1), 0.5, 0.8)
		e.Fear = max(e.Fear, boosted)
	}
	return e
}

// suggestCategory maps the first matched theme to a category. The caller
// drops the suggestion when it agrees with the author's own choice.
func suggestCategory(themes []string) domain.Category {
	if len(themes) == 0 {
		return ""
	}
	switch themes[0] {
	case "infrastructure":
		return domain.CategoryTransport
	case "hospitality":
		return domain.CategoryService
	case "cleanliness":
		return domain.CategoryAccommodation
	case "safety", "accessibility", "nature":
		return domain.CategoryDestination
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
