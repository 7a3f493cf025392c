// Package app is the application layer — the only component that references
// multiple domain components. It orchestrates every use case: intake with
// classification, queries, summaries, and workflow transitions.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/errors"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/logging"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/metrics"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/workflow"
)

// SummaryCache caches the whole-store summary. Implementations must fail
// open: a broken cache degrades to recomputation, never to an error.
type SummaryCache interface {
	Get(ctx context.Context) (domain.FeedbackSummary, bool)
	Set(ctx context.Context, summary domain.FeedbackSummary)
	Invalidate(ctx context.Context)
}

// Service implements domain.AppService.
type Service struct {
	repo       domain.FeedbackRepository
	classifier domain.Classifier
	summarizer domain.Summarizer
	cache      SummaryCache // nil when no cache is configured
	clock      clockwork.Clock

	// summaryGroup collapses concurrent whole-store summary recomputations.
	summaryGroup singleflight.Group
}

var _ domain.AppService = (*Service)(nil)

// NewService creates the application layer service. cache may be nil.
func NewService(repo domain.FeedbackRepository, classifier domain.Classifier, summarizer domain.Summarizer, cache SummaryCache, clock clockwork.Clock) *Service {
	return &Service{
		repo:       repo,
		classifier: classifier,
		summarizer: summarizer,
		cache:      cache,
		clock:      clock,
	}
}

// Submit validates, classifies, and stores a new piece of feedback.
// Validation runs before classification so a malformed submission never
// reaches the scoring step.
func (s *Service) Submit(ctx context.Context, sub domain.Submission) (*domain.FeedbackRecord, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	start := time.Now()
	sentiment := s.classifier.Classify(sub.Comment, sub.Rating)
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
	metrics.ClassificationsTotal.WithLabelValues(string(sentiment.Overall)).Inc()
	if sentiment.Urgency == domain.UrgencyHigh {
		metrics.UrgentClassificationsTotal.Inc()
	}

	// A suggestion matching the author's own choice carries no information.
	if sentiment.SuggestedCategory == sub.Category {
		sentiment.SuggestedCategory = ""
	}

	record := &domain.FeedbackRecord{
		ID:                uuid.New(),
		AuthorID:          sub.AuthorID,
		AuthorName:        sub.AuthorName,
		AuthorEmail:       sub.AuthorEmail,
		Category:          sub.Category,
		Rating:            sub.Rating,
		Title:             sub.Title,
		Comment:           sub.Comment,
		Images:            sub.Images,
		Location:          sub.Location,
		RelatedEntityID:   sub.RelatedEntityID,
		RelatedEntityName: sub.RelatedEntityName,
		Timestamp:         s.clock.Now().UTC(),
		IsAnonymous:       sub.IsAnonymous,
		Tags:              sub.Tags,
		Sentiment:         sentiment,
		Status:            domain.StatusPending,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, errors.InternalError("failed to store feedback", err)
	}

	metrics.SubmissionsTotal.WithLabelValues(string(record.Category)).Inc()
	s.invalidateSummary(ctx)

	logging.WithFeedback(record.ID.String()).Info("Feedback submitted",
		"category", string(record.Category),
		"rating", record.Rating,
		"sentiment", string(sentiment.Overall),
		"urgency", string(sentiment.Urgency))

	return record, nil
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.FeedbackRecord, error) {
	return s.repo.Get(ctx, id)
}

// Query returns all records matching the filter, newest first.
func (s *Service) Query(ctx context.Context, filter domain.QueryFilter) ([]*domain.FeedbackRecord, error) {
	return s.repo.Query(ctx, filter)
}

// Summarize computes a FeedbackSummary over the filtered record set. The
// whole-store summary goes through singleflight and the optional cache;
// filtered summaries are always computed fresh.
func (s *Service) Summarize(ctx context.Context, filter domain.QueryFilter) (domain.FeedbackSummary, error) {
	if !filter.IsZero() {
		records, err := s.repo.Query(ctx, filter)
		if err != nil {
			return domain.FeedbackSummary{}, err
		}
		return s.summarizer.Summarize(records), nil
	}

	v, err, _ := s.summaryGroup.Do("summary", func() (any, error) {
		if s.cache != nil {
			if summary, ok := s.cache.Get(ctx); ok {
				return summary, nil
			}
		}

		records, err := s.repo.Query(ctx, domain.QueryFilter{})
		if err != nil {
			return nil, err
		}

		summary := s.summarizer.Summarize(records)

		if s.cache != nil {
			s.cache.Set(ctx, summary)
		}
		return summary, nil
	})
	if err != nil {
		return domain.FeedbackSummary{}, err
	}
	return v.(domain.FeedbackSummary), nil
}

// UpdateStatus applies a workflow transition with an optional admin response.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, response *domain.AdminResponse) (*domain.FeedbackRecord, error) {
	if !status.Valid() {
		return nil, errors.ValidationError("unknown status").WithContext("status", string(status))
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	workflow.Apply(current, status, response, s.clock.Now().UTC())
	if response != nil {
		response = current.AdminResponse
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, response)
	if err != nil {
		return nil, err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(status)).Inc()
	s.invalidateSummary(ctx)

	logger := logging.WithFeedback(id.String())
	if response != nil {
		logger = logger.With("responder_id", response.ResponderID)
	}
	logger.Info("Feedback status updated", "status", string(status))

	return updated, nil
}

// Categories returns the static submission-form taxonomy.
func (s *Service) Categories() []domain.CategoryOption {
	return domain.CategoryTaxonomy()
}

func (s *Service) invalidateSummary(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func validateSubmission(sub domain.Submission) error {
	reject := func(reason, message string) error {
		metrics.SubmissionsRejectedTotal.WithLabelValues(reason).Inc()
		return errors.ValidationError(message)
	}

	if strings.TrimSpace(sub.AuthorID) == "" {
		return reject("missing_author", "authorId is required")
	}
	if strings.TrimSpace(sub.AuthorName) == "" {
		return reject("missing_author", "authorName is required")
	}
	if !sub.Category.Valid() {
		return reject("invalid_category", "unknown category: "+string(sub.Category))
	}
	if sub.Rating < 1 || sub.Rating > 5 {
		return reject("invalid_rating", "rating must be between 1 and 5")
	}
	if strings.TrimSpace(sub.Title) == "" {
		return reject("missing_text", "title is required")
	}
	if strings.TrimSpace(sub.Comment) == "" {
		return reject("missing_text", "comment is required")
	}
	return nil
}
