// Package workflow applies status transitions and admin responses to
// feedback records. The state machine is deliberately permissive: any status
// may follow any status (re-opening resolved or archived records is
// allowed), so the only error surface is an unknown record id, handled by
// the repository. The recommended path is
// pending → reviewed → resolved, with archived reachable from any state.
package workflow

import (
	"log/slog"
	"time"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
)

// Recommended reports whether the transition follows the recommended path.
// Non-recommended transitions are still applied; this only drives logging.
func Recommended(from, to domain.Status) bool {
	if to == domain.StatusArchived {
		return from != domain.StatusArchived
	}
	switch from {
	case domain.StatusPending:
		return to == domain.StatusReviewed
	case domain.StatusReviewed:
		return to == domain.StatusResolved
	}
	return false
}

// Apply mutates the record's status and admin response in place. The status
// and response change together so a reader never observes one without the
// other. A nil response leaves any existing response untouched.
func Apply(record *domain.FeedbackRecord, to domain.Status, response *domain.AdminResponse, now time.Time) {
	from := record.Status
	if !Recommended(from, to) && from != to {
		slog.Debug("Non-recommended status transition",
			"feedback_id", record.ID.String(),
			"from", string(from),
			"to", string(to))
	}

	record.Status = to
	if response != nil {
		resp := *response
		if resp.Timestamp.IsZero() {
			resp.Timestamp = now
		}
		record.AdminResponse = &resp
	}
}
