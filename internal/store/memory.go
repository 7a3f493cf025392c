// Package store provides the in-memory FeedbackRepository used in
// single-instance mode and in tests.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
)

type memoryEntry struct {
	record *domain.FeedbackRecord
	seq    uint64 // insertion sequence, tie-break for identical timestamps
}

// MemoryStore is an in-memory FeedbackRepository. Unlike a database-backed
// repository it is called from many goroutines directly, so all access goes
// through an RWMutex; reads hand out deep copies so no caller can alias the
// stored records.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*memoryEntry
	nextSeq uint64
}

// NewMemoryStore creates an empty in-memory repository.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[uuid.UUID]*memoryEntry),
	}
}

// Insert stores a new record. The record is copied on the way in, so later
// caller mutations cannot reach the stored state.
func (s *MemoryStore) Insert(_ context.Context, record *domain.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.ID] = &memoryEntry{
		record: record.Clone(),
		seq:    s.nextSeq,
	}
	s.nextSeq++
	return nil
}

// Get returns a copy of the record or domain.ErrFeedbackNotFound.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*domain.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.records[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}
	return entry.record.Clone(), nil
}

// UpdateStatus sets the status and optional admin response atomically and
// returns the updated record. The workflow is permissive: no transition is
// ever rejected, only unknown ids fail.
func (s *MemoryStore) UpdateStatus(_ context.Context, id uuid.UUID, status domain.Status, response *domain.AdminResponse) (*domain.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.records[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}

	entry.record.Status = status
	if response != nil {
		resp := *response
		if response.ActionsTaken != nil {
			resp.ActionsTaken = append([]string(nil), response.ActionsTaken...)
		}
		entry.record.AdminResponse = &resp
	}
	return entry.record.Clone(), nil
}

// Query returns copies of all records matching the filter, ordered by
// timestamp descending. The snapshot is cloned under the read lock, so
// concurrent writers can never corrupt a tally computed from the result.
func (s *MemoryStore) Query(_ context.Context, filter domain.QueryFilter) ([]*domain.FeedbackRecord, error) {
	type snapshotEntry struct {
		record *domain.FeedbackRecord
		seq    uint64
	}

	s.mu.RLock()
	matched := make([]snapshotEntry, 0, len(s.records))
	for _, entry := range s.records {
		if matches(entry.record, filter) {
			matched = append(matched, snapshotEntry{record: entry.record.Clone(), seq: entry.seq})
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		ti, tj := matched[i].record.Timestamp, matched[j].record.Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return matched[i].seq > matched[j].seq
	})

	results := make([]*domain.FeedbackRecord, len(matched))
	for i, entry := range matched {
		results[i] = entry.record
	}
	return results, nil
}

// matches applies the conjunctive filter semantics.
func matches(record *domain.FeedbackRecord, filter domain.QueryFilter) bool {
	if filter.Category != nil && record.Category != *filter.Category {
		return false
	}
	if filter.Sentiment != nil && record.Sentiment.Overall != *filter.Sentiment {
		return false
	}
	if filter.Rating != nil && record.Rating != *filter.Rating {
		return false
	}
	if filter.Urgency != nil && record.Sentiment.Urgency != *filter.Urgency {
		return false
	}
	if filter.Status != nil && record.Status != *filter.Status {
		return false
	}
	if filter.Search != "" && !matchesSearch(record, filter.Search) {
		return false
	}
	return true
}

// matchesSearch checks title, comment, and tags for a case-insensitive
// substring match.
func matchesSearch(record *domain.FeedbackRecord, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(record.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Comment), needle) {
		return true
	}
	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
