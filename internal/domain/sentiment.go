package domain

// SentimentLabel is the overall polarity of a classified comment.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Valid reports whether l is a known sentiment label.
func (l SentimentLabel) Valid() bool {
	switch l {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Urgency is the triage level assigned during classification.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Valid reports whether u is a known urgency level.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// EmotionScores is a six-dimensional emotion vector. Dimensions are
// independent, each in [0,1]; they are not required to sum to 1.
type EmotionScores struct {
	Joy      float64 `json:"joy"`
	Sadness  float64 `json:"sadness"`
	Anger    float64 `json:"anger"`
	Fear     float64 `json:"fear"`
	Surprise float64 `json:"surprise"`
	Disgust  float64 `json:"disgust"`
}

// SentimentResult is the classifier output embedded in a FeedbackRecord.
// It is a value, not independently addressable, and is never recomputed
// after the record is created.
type SentimentResult struct {
	Overall           SentimentLabel `json:"overall"`
	Score             float64        `json:"score"`      // in [-1, 1]
	Confidence        float64        `json:"confidence"` // in [0.8, 1]
	Emotions          EmotionScores  `json:"emotions"`
	KeyPhrases        []string       `json:"keyPhrases,omitempty"`
	Themes            []string       `json:"themes,omitempty"`
	Urgency           Urgency        `json:"urgency"`
	ActionRequired    bool           `json:"actionRequired"`
	SuggestedCategory Category       `json:"suggestedCategory,omitempty"`
}

// Clone returns a copy with no shared slices.
func (s SentimentResult) Clone() SentimentResult {
	cp := s
	if s.KeyPhrases != nil {
		cp.KeyPhrases = append([]string(nil), s.KeyPhrases...)
	}
	if s.Themes != nil {
		cp.Themes = append([]string(nil), s.Themes...)
	}
	return cp
}
