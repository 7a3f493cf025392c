package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
)

func TestRatingMonotonicity(t *testing.T) {
	c := NewDefault()
	comment := "The weather was average during our stay"

	scores := make([]float64, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		scores = append(scores, c.Classify(comment, rating).Score)
	}

	for i := 1; i < len(scores); i++ {
		assert.Greater(t, scores[i-1], scores[i],
			"rating %d must score strictly higher than rating %d", 5-i+1, 5-i)
	}
	assert.InDelta(t, 0.65, scores[0], 1e-9)
	assert.InDelta(t, 0.30, scores[1], 1e-9)
	assert.InDelta(t, 0.0, scores[2], 1e-9)
	assert.InDelta(t, -0.30, scores[3], 1e-9)
	assert.InDelta(t, -0.65, scores[4], 1e-9)
}

func TestLexiconOverridesHighRating(t *testing.T) {
	c := NewDefault()

	result := c.Classify("This was a terrible, disappointing trip", 5)

	assert.Equal(t, domain.SentimentNegative, result.Overall)
	assert.InDelta(t, -0.70, result.Score, 1e-9)
}

func TestLexiconOverridesLowRating(t *testing.T) {
	c := NewDefault()

	result := c.Classify("Amazing views, wonderful guide, perfect day", 1)

	assert.Equal(t, domain.SentimentPositive, result.Overall)
	assert.GreaterOrEqual(t, result.Score, 0.40+3*0.15)
}

func TestLexiconTieKeepsBaseline(t *testing.T) {
	c := NewDefault()

	result := c.Classify("amazing start, terrible ending", 4)

	assert.Equal(t, domain.SentimentPositive, result.Overall)
	assert.InDelta(t, 0.30, result.Score, 1e-9)
}

func TestScoreClamped(t *testing.T) {
	c := NewDefault()
	comment := strings.Repeat("terrible awful horrible ", 10)

	result := c.Classify(comment, 1)

	assert.GreaterOrEqual(t, result.Score, -1.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.Equal(t, -1.0, result.Score)
}

func TestUrgencyScenario(t *testing.T) {
	c := NewDefault()

	result := c.Classify("Multiple tourists got lost, the park needs better signage immediately", 1)

	assert.Equal(t, domain.UrgencyHigh, result.Urgency)
	assert.True(t, result.ActionRequired)
}

func TestUrgencyRules(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name    string
		comment string
		rating  int
		want    domain.Urgency
	}{
		{"trigger word", "this needs urgent attention", 4, domain.UrgencyHigh},
		{"dangerous", "the bridge looked dangerous", 3, domain.UrgencyHigh},
		{"rating one", "not what we hoped for", 1, domain.UrgencyHigh},
		{"rating two", "below expectations", 2, domain.UrgencyMedium},
		{"problem marker", "there is a problem with the booking system", 3, domain.UrgencyMedium},
		{"issue marker", "minor issue with parking", 4, domain.UrgencyMedium},
		{"calm", "lovely quiet afternoon by the lake", 4, domain.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.comment, tt.rating)
			assert.Equal(t, tt.want, result.Urgency)
		})
	}
}

func TestActionRequired(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name    string
		comment string
		rating  int
		want    bool
	}{
		{"high urgency", "emergency exit was blocked", 4, true},
		{"low rating", "just not good enough", 2, true},
		{"urgent word", "urgent repair needed", 5, true},
		{"calm positive", "a wonderful relaxed weekend", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.comment, tt.rating)
			assert.Equal(t, tt.want, result.ActionRequired)
		})
	}
}

func TestThemeExtraction(t *testing.T) {
	c := NewDefault()

	result := c.Classify("Buses are irregular and the road connectivity is poor", 2)

	assert.Contains(t, result.Themes, "infrastructure")
}

func TestThemeMatchingTable(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name    string
		comment string
		want    []string
	}{
		{"safety", "I never felt any danger on the trail", []string{"safety"}},
		{"hospitality", "The staff were friendly and helpful", []string{"hospitality"}},
		{"cleanliness", "Rooms were dirty and hygiene was lacking", []string{"cleanliness"}},
		{"accessibility", "No wheelchair access at the entrance", []string{"accessibility"}},
		{"nature", "The forest and wildlife were stunning", []string{"nature"}},
		{"multiple", "Road maintenance is poor and the area feels unsafe, a real security risk", []string{"infrastructure", "safety"}},
		{"none", "We had juice for breakfast", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.comment, 3)
			assert.Equal(t, tt.want, result.Themes)
		})
	}
}

func TestThemeMatchingIsCaseInsensitive(t *testing.T) {
	c := NewDefault()

	result := c.Classify("The ROAD was fine but SECURITY was slow", 3)

	assert.Contains(t, result.Themes, "infrastructure")
	assert.Contains(t, result.Themes, "safety")
}

func TestConfidenceBoundsAndDeterminism(t *testing.T) {
	c := NewDefault()

	comments := []string{
		"",
		"ok",
		"amazing wonderful perfect fantastic excellent great beautiful love",
		strings.Repeat("terrible awful horrible disappointing ", 20),
	}

	for _, comment := range comments {
		first := c.Classify(comment, 3)
		second := c.Classify(comment, 3)

		assert.Equal(t, first, second, "classification must be reproducible")
		assert.GreaterOrEqual(t, first.Confidence, 0.8)
		assert.LessOrEqual(t, first.Confidence, 1.0)
	}
}

func TestEmotionsWithinBounds(t *testing.T) {
	c := NewDefault()
	comments := []string{
		"amazing wonderful perfect fantastic",
		strings.Repeat("terrible awful horrible worst ", 10),
		"an ordinary day",
	}

	for _, comment := range comments {
		for rating := 1; rating <= 5; rating++ {
			e := c.Classify(comment, rating).Emotions
			for name, v := range map[string]float64{
				"joy": e.Joy, "sadness": e.Sadness, "anger": e.Anger,
				"fear": e.Fear, "surprise": e.Surprise, "disgust": e.Disgust,
			} {
				assert.GreaterOrEqual(t, v, 0.0, "%s for %q", name, comment)
				assert.LessOrEqual(t, v, 1.0, "%s for %q", name, comment)
			}
		}
	}
}

func TestEmotionPolarity(t *testing.T) {
	c := NewDefault()

	positive := c.Classify("What an amazing, beautiful place", 5).Emotions
	negative := c.Classify("Terrible, awful experience", 1).Emotions

	assert.Greater(t, positive.Joy, positive.Sadness)
	assert.Greater(t, negative.Sadness, negative.Joy)
	assert.Greater(t, negative.Anger, positive.Anger)
	assert.Greater(t, negative.Disgust, positive.Disgust)
}

func TestFearBoostOverridesPositiveSentiment(t *testing.T) {
	c := NewDefault()

	result := c.Classify("Amazing views but the cliff path felt unsafe and dangerous", 5)

	assert.Equal(t, domain.SentimentPositive, result.Overall)
	assert.GreaterOrEqual(t, result.Emotions.Fear, 0.5)
	assert.LessOrEqual(t, result.Emotions.Fear, 0.8)
}

func TestEmptyCommentDegradesGracefully(t *testing.T) {
	c := NewDefault()

	result := c.Classify("", 3)

	assert.Equal(t, domain.SentimentNeutral, result.Overall)
	assert.Zero(t, result.Score)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	assert.Empty(t, result.Themes)
	assert.Empty(t, result.KeyPhrases)
	assert.Equal(t, domain.UrgencyLow, result.Urgency)
	assert.False(t, result.ActionRequired)
}

func TestOutOfRangeRatingDegradesGracefully(t *testing.T) {
	c := NewDefault()

	low := c.Classify("some text here that is fine", 0)
	high := c.Classify("some text here that is fine", 9)

	assert.Equal(t, c.Classify("some text here that is fine", 1), low)
	assert.Equal(t, c.Classify("some text here that is fine", 5), high)
}

func TestSuggestedCategory(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name    string
		comment string
		want    domain.Category
	}{
		{"infrastructure", "road maintenance is overdue", domain.CategoryTransport},
		{"hospitality", "staff were welcoming", domain.CategoryService},
		{"cleanliness", "everything was clean", domain.CategoryAccommodation},
		{"nature", "wildlife everywhere", domain.CategoryDestination},
		{"no theme", "we had juice for breakfast", domain.Category("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.comment, 3)
			assert.Equal(t, tt.want, result.SuggestedCategory)
		})
	}
}

func TestCustomLexicon(t *testing.T) {
	lex := Lexicon{
		Positive: []string{"super"},
		Negative: []string{"schlecht"},
		Themes: []ThemeEntry{
			{Label: "verkehr", Keywords: []string{"bus", "bahn"}},
		},
		UrgencyTriggers: []string{"dringend"},
		ProblemMarkers:  []string{"problem"},
	}
	c := New(lex)

	result := c.Classify("Der Bus war schlecht, dringend verbessern", 4)

	require.Equal(t, domain.SentimentNegative, result.Overall)
	assert.Equal(t, []string{"verkehr"}, result.Themes)
	assert.Equal(t, domain.UrgencyHigh, result.Urgency)
}
