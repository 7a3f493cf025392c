package domain

import (
	"context"

	"github.com/google/uuid"
)

// --- Shared value types ---

// QueryFilter narrows a feedback query. All fields are optional and combine
// with AND semantics. Search is a case-insensitive substring match against
// title, comment, and tags.
type QueryFilter struct {
	Category  *Category
	Sentiment *SentimentLabel
	Rating    *int
	Urgency   *Urgency
	Status    *Status
	Search    string
}

// IsZero reports whether the filter matches everything.
func (f QueryFilter) IsZero() bool {
	return f.Category == nil && f.Sentiment == nil && f.Rating == nil &&
		f.Urgency == nil && f.Status == nil && f.Search == ""
}

// Submission is the raw intake payload before validation and classification.
type Submission struct {
	AuthorID          string
	AuthorName        string
	AuthorEmail       string
	Category          Category
	Rating            int
	Title             string
	Comment           string
	Images            []string
	Location          *Location
	RelatedEntityID   string
	RelatedEntityName string
	IsAnonymous       bool
	Tags              []string
}

// --- Interfaces ---

// FeedbackRepository abstracts feedback persistence. Implementations must
// not lose records under concurrent Insert calls and must serialize
// concurrent UpdateStatus calls on the same id. Query returns records
// ordered by timestamp descending over a consistent snapshot.
type FeedbackRepository interface {
	Insert(ctx context.Context, record *FeedbackRecord) error
	Get(ctx context.Context, id uuid.UUID) (*FeedbackRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, response *AdminResponse) (*FeedbackRecord, error)
	Query(ctx context.Context, filter QueryFilter) ([]*FeedbackRecord, error)
}

// Classifier turns a comment and rating into a SentimentResult. It is pure,
// deterministic, and total: pathological input degrades to a neutral,
// low-signal result instead of failing.
type Classifier interface {
	Classify(comment string, rating int) SentimentResult
}

// Summarizer computes a FeedbackSummary over any record snapshot.
type Summarizer interface {
	Summarize(records []*FeedbackRecord) FeedbackSummary
}

// AppService is the application layer contract. HTTP handlers route every
// operation through here.
type AppService interface {
	Submit(ctx context.Context, sub Submission) (*FeedbackRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*FeedbackRecord, error)
	Query(ctx context.Context, filter QueryFilter) ([]*FeedbackRecord, error)
	Summarize(ctx context.Context, filter QueryFilter) (FeedbackSummary, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, response *AdminResponse) (*FeedbackRecord, error)
	Categories() []CategoryOption
}
