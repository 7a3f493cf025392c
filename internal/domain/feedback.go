package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is the author-chosen subject area of a piece of feedback.
type Category string

const (
	CategoryDestination   Category = "destination"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryService       Category = "service"
	CategoryGuide         Category = "guide"
	CategoryMarketplace   Category = "marketplace"
	CategoryOverall       Category = "overall"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryDestination,
		CategoryTransport,
		CategoryAccommodation,
		CategoryService,
		CategoryGuide,
		CategoryMarketplace,
		CategoryOverall,
	}
}

// Valid reports whether c is a member of the fixed category enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryDestination, CategoryTransport, CategoryAccommodation,
		CategoryService, CategoryGuide, CategoryMarketplace, CategoryOverall:
		return true
	}
	return false
}

// Status is the workflow state of a feedback record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusResolved Status = "resolved"
	StatusArchived Status = "archived"
)

// Valid reports whether s is a known workflow status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusResolved, StatusArchived:
		return true
	}
	return false
}

// Location is an optional geocoordinate attached to feedback.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// AdminResponse is attached by staff when they act on a record.
type AdminResponse struct {
	ResponderID  string    `json:"responderId"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	ActionsTaken []string  `json:"actionsTaken,omitempty"`
}

// FeedbackRecord is one submitted piece of traveler feedback. The record is
// created once, enriched with a SentimentResult exactly once, and afterwards
// only Status and AdminResponse change (through the workflow layer).
// Re-analysis means a new record, never a mutated sentiment.
type FeedbackRecord struct {
	ID                uuid.UUID       `json:"id"`
	AuthorID          string          `json:"authorId"`
	AuthorName        string          `json:"authorName"`
	AuthorEmail       string          `json:"authorEmail,omitempty"`
	Category          Category        `json:"category"`
	Rating            int             `json:"rating"`
	Title             string          `json:"title"`
	Comment           string          `json:"comment"`
	Images            []string        `json:"images,omitempty"`
	Location          *Location       `json:"location,omitempty"`
	RelatedEntityID   string          `json:"relatedEntityId,omitempty"`
	RelatedEntityName string          `json:"relatedEntityName,omitempty"`
	Timestamp         time.Time       `json:"timestamp"`
	IsAnonymous       bool            `json:"isAnonymous"`
	Tags              []string        `json:"tags,omitempty"`
	Sentiment         SentimentResult `json:"sentiment"`
	Status            Status          `json:"status"`
	AdminResponse     *AdminResponse  `json:"adminResponse,omitempty"`
}

// Clone returns a deep copy so that snapshots handed to readers can never
// alias the stored record.
func (r *FeedbackRecord) Clone() *FeedbackRecord {
	cp := *r
	if r.Images != nil {
		cp.Images = append([]string(nil), r.Images...)
	}
	if r.Tags != nil {
		cp.Tags = append([]string(nil), r.Tags...)
	}
	if r.Location != nil {
		loc := *r.Location
		cp.Location = &loc
	}
	if r.AdminResponse != nil {
		resp := *r.AdminResponse
		if r.AdminResponse.ActionsTaken != nil {
			resp.ActionsTaken = append([]string(nil), r.AdminResponse.ActionsTaken...)
		}
		cp.AdminResponse = &resp
	}
	cp.Sentiment = r.Sentiment.Clone()
	return &cp
}
