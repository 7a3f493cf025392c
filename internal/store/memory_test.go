package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
)

func newRecord(opts ...func(*domain.FeedbackRecord)) *domain.FeedbackRecord {
	r := &domain.FeedbackRecord{
		ID:         uuid.New(),
		AuthorID:   "traveler-1",
		AuthorName: "Asha",
		Category:   domain.CategoryDestination,
		Rating:     4,
		Title:      "Nice trails",
		Comment:    "The trails were well marked",
		Timestamp:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		Tags:       []string{"hiking"},
		Sentiment: domain.SentimentResult{
			Overall: domain.SentimentPositive,
			Urgency: domain.UrgencyLow,
		},
		Status: domain.StatusPending,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func TestInsertAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	record := newRecord()

	require.NoError(t, s.Insert(ctx, record))

	got, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGetUnknownID(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)
}

func TestInsertCopiesRecord(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	record := newRecord()
	require.NoError(t, s.Insert(ctx, record))

	record.Title = "mutated after insert"
	record.Tags[0] = "mutated"

	got, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nice trails", got.Title)
	assert.Equal(t, []string{"hiking"}, got.Tags)
}

func TestGetCopiesRecord(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	record := newRecord()
	require.NoError(t, s.Insert(ctx, record))

	first, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	first.Comment = "mutated"

	second, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "The trails were well marked", second.Comment)
}

func TestUpdateStatusRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	record := newRecord()
	require.NoError(t, s.Insert(ctx, record))

	response := &domain.AdminResponse{
		ResponderID: "staff-1",
		Message:     "Fixed the signage",
		Timestamp:   time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
	}
	updated, err := s.UpdateStatus(ctx, record.ID, domain.StatusResolved, response)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, updated.Status)

	got, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, got.Status)
	require.NotNil(t, got.AdminResponse)
	assert.Equal(t, "staff-1", got.AdminResponse.ResponderID)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.UpdateStatus(context.Background(), uuid.New(), domain.StatusResolved, nil)

	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)
}

func TestUpdateStatusWithoutResponseKeepsExisting(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	record := newRecord()
	require.NoError(t, s.Insert(ctx, record))

	_, err := s.UpdateStatus(ctx, record.ID, domain.StatusReviewed, &domain.AdminResponse{ResponderID: "staff-1", Message: "noted"})
	require.NoError(t, err)
	updated, err := s.UpdateStatus(ctx, record.ID, domain.StatusResolved, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "noted", updated.AdminResponse.Message)
}

func TestQueryOrderedByTimestampDescending(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	oldest := newRecord(func(r *domain.FeedbackRecord) { r.Timestamp = base })
	middle := newRecord(func(r *domain.FeedbackRecord) { r.Timestamp = base.Add(time.Hour) })
	newest := newRecord(func(r *domain.FeedbackRecord) { r.Timestamp = base.Add(2 * time.Hour) })

	for _, r := range []*domain.FeedbackRecord{middle, oldest, newest} {
		require.NoError(t, s.Insert(ctx, r))
	}

	results, err := s.Query(ctx, domain.QueryFilter{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, newest.ID, results[0].ID)
	assert.Equal(t, middle.ID, results[1].ID)
	assert.Equal(t, oldest.ID, results[2].ID)
}

func TestQueryEqualTimestampsNewestInsertFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := newRecord()
	second := newRecord()
	require.NoError(t, s.Insert(ctx, first))
	require.NoError(t, s.Insert(ctx, second))

	results, err := s.Query(ctx, domain.QueryFilter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, second.ID, results[0].ID)
	assert.Equal(t, first.ID, results[1].ID)
}

func TestQueryFilters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	transport := newRecord(func(r *domain.FeedbackRecord) {
		r.Category = domain.CategoryTransport
		r.Rating = 2
		r.Sentiment.Overall = domain.SentimentNegative
		r.Sentiment.Urgency = domain.UrgencyMedium
		r.Status = domain.StatusReviewed
		r.Comment = "The bus schedule is chaotic"
	})
	guide := newRecord(func(r *domain.FeedbackRecord) {
		r.Category = domain.CategoryGuide
		r.Rating = 5
		r.Tags = []string{"birdwatching", "sunrise"}
	})
	require.NoError(t, s.Insert(ctx, transport))
	require.NoError(t, s.Insert(ctx, guide))

	category := domain.CategoryTransport
	sentiment := domain.SentimentNegative
	rating := 2
	urgency := domain.UrgencyMedium
	status := domain.StatusReviewed

	tests := []struct {
		name   string
		filter domain.QueryFilter
		want   []uuid.UUID
	}{
		{"no filter", domain.QueryFilter{}, []uuid.UUID{guide.ID, transport.ID}},
		{"category", domain.QueryFilter{Category: &category}, []uuid.UUID{transport.ID}},
		{"sentiment", domain.QueryFilter{Sentiment: &sentiment}, []uuid.UUID{transport.ID}},
		{"rating", domain.QueryFilter{Rating: &rating}, []uuid.UUID{transport.ID}},
		{"urgency", domain.QueryFilter{Urgency: &urgency}, []uuid.UUID{transport.ID}},
		{"status", domain.QueryFilter{Status: &status}, []uuid.UUID{transport.ID}},
		{"search comment", domain.QueryFilter{Search: "BUS"}, []uuid.UUID{transport.ID}},
		{"search tag", domain.QueryFilter{Search: "birdwatch"}, []uuid.UUID{guide.ID}},
		{"search title", domain.QueryFilter{Search: "nice trails"}, []uuid.UUID{guide.ID, transport.ID}},
		{"conjunctive", domain.QueryFilter{Category: &category, Rating: &rating}, []uuid.UUID{transport.ID}},
		{"conjunctive miss", domain.QueryFilter{Category: &category, Search: "birdwatch"}, nil},
		{"no match", domain.QueryFilter{Search: "nonexistent"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Query(ctx, tt.filter)
			require.NoError(t, err)

			got := make([]uuid.UUID, 0, len(results))
			for _, r := range results {
				got = append(got, r.ID)
			}
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestQueryIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, newRecord()))
	require.NoError(t, s.Insert(ctx, newRecord()))

	first, err := s.Query(ctx, domain.QueryFilter{})
	require.NoError(t, err)
	second, err := s.Query(ctx, domain.QueryFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConcurrentInsertsLoseNothing(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				r := newRecord(func(r *domain.FeedbackRecord) {
					r.Title = fmt.Sprintf("writer %d item %d", w, i)
				})
				_ = s.Insert(ctx, r)
			}
		}(w)
	}
	wg.Wait()

	results, err := s.Query(ctx, domain.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, results, writers*perWriter)
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seed := newRecord()
	require.NoError(t, s.Insert(ctx, seed))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.Insert(ctx, newRecord())
				_, _ = s.UpdateStatus(ctx, seed.ID, domain.StatusReviewed, nil)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.Query(ctx, domain.QueryFilter{})
				_, _ = s.Get(ctx, seed.ID)
			}
		}()
	}
	wg.Wait()

	results, err := s.Query(ctx, domain.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 1+4*50)
}
