package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
	apperrors "github.com/yashraj24007/ROOTSnROUTES-sub001/internal/errors"
)

// anonymousName replaces the author name on anonymous records at the
// response edge. Storage always keeps the real name.
const anonymousName = "Anonymous"

type submitRequest struct {
	AuthorID          string           `json:"authorId"`
	AuthorName        string           `json:"authorName"`
	AuthorEmail       string           `json:"authorEmail"`
	Category          string           `json:"category"`
	Rating            int              `json:"rating"`
	Title             string           `json:"title"`
	Comment           string           `json:"comment"`
	Images            []string         `json:"images"`
	Location          *domain.Location `json:"location"`
	RelatedEntityID   string           `json:"relatedEntityId"`
	RelatedEntityName string           `json:"relatedEntityName"`
	IsAnonymous       bool             `json:"isAnonymous"`
	Tags              []string         `json:"tags"`
}

type updateStatusRequest struct {
	Status        string              `json:"status"`
	AdminResponse *adminResponseInput `json:"adminResponse"`
}

type adminResponseInput struct {
	ResponderID  string   `json:"responderId"`
	Message      string   `json:"message"`
	ActionsTaken []string `json:"actionsTaken"`
}

func (s *Server) handleSubmit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	record, err := s.app.Submit(c.Request().Context(), domain.Submission{
		AuthorID:          req.AuthorID,
		AuthorName:        req.AuthorName,
		AuthorEmail:       req.AuthorEmail,
		Category:          domain.Category(req.Category),
		Rating:            req.Rating,
		Title:             req.Title,
		Comment:           req.Comment,
		Images:            req.Images,
		Location:          req.Location,
		RelatedEntityID:   req.RelatedEntityID,
		RelatedEntityName: req.RelatedEntityName,
		IsAnonymous:       req.IsAnonymous,
		Tags:              req.Tags,
	})
	if err != nil {
		return err
	}

	if err := c.JSON(201, shapeRecord(record)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleQuery(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	records, err := s.app.Query(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	shaped := make([]*domain.FeedbackRecord, len(records))
	for i, record := range records {
		shaped[i] = shapeRecord(record)
	}

	if err := c.JSON(200, shaped); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSummary(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	summary, err := s.app.Summarize(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	if err := c.JSON(200, summary); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCategories(c echo.Context) error {
	if err := c.JSON(200, s.app.Categories()); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	record, err := s.app.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return apperrors.NotFoundError("feedback not found").WithField("id", id.String())
		}
		return apperrors.InternalError("failed to load feedback", err).WithField("id", id.String())
	}

	if err := c.JSON(200, shapeRecord(record)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Status == "" {
		return apperrors.ValidationError("status is required")
	}

	var response *domain.AdminResponse
	if req.AdminResponse != nil {
		if req.AdminResponse.ResponderID == "" || req.AdminResponse.Message == "" {
			return apperrors.ValidationError("adminResponse requires responderId and message")
		}
		response = &domain.AdminResponse{
			ResponderID:  req.AdminResponse.ResponderID,
			Message:      req.AdminResponse.Message,
			ActionsTaken: req.AdminResponse.ActionsTaken,
		}
	}

	record, err := s.app.UpdateStatus(c.Request().Context(), id, domain.Status(req.Status), response)
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return apperrors.NotFoundError("feedback not found").WithField("id", id.String())
		}
		return err
	}

	if err := c.JSON(200, shapeRecord(record)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func parseID(c echo.Context) (uuid.UUID, error) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid feedback id").WithField("id", idStr)
	}
	return id, nil
}

// parseFilter reads the optional query parameters shared by the query and
// summary endpoints. Unknown enum values are rejected rather than silently
// matching nothing.
func parseFilter(c echo.Context) (domain.QueryFilter, error) {
	var filter domain.QueryFilter

	if v := c.QueryParam("category"); v != "" {
		category := domain.Category(v)
		if !category.Valid() {
			return filter, apperrors.ValidationError("unknown category").WithField("category", v)
		}
		filter.Category = &category
	}
	if v := c.QueryParam("sentiment"); v != "" {
		sentiment := domain.SentimentLabel(v)
		if !sentiment.Valid() {
			return filter, apperrors.ValidationError("unknown sentiment").WithField("sentiment", v)
		}
		filter.Sentiment = &sentiment
	}
	if v := c.QueryParam("rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperrors.ValidationError("rating must be an integer").WithField("rating", v)
		}
		filter.Rating = &rating
	}
	if v := c.QueryParam("urgency"); v != "" {
		urgency := domain.Urgency(v)
		if !urgency.Valid() {
			return filter, apperrors.ValidationError("unknown urgency").WithField("urgency", v)
		}
		filter.Urgency = &urgency
	}
	if v := c.QueryParam("status"); v != "" {
		status := domain.Status(v)
		if !status.Valid() {
			return filter, apperrors.ValidationError("unknown status").WithField("status", v)
		}
		filter.Status = &status
	}
	filter.Search = c.QueryParam("search")

	return filter, nil
}

func shapeRecord(record *domain.FeedbackRecord) *domain.FeedbackRecord {
	if !record.IsAnonymous {
		return record
	}
	shaped := record.Clone()
	shaped.AuthorName = anonymousName
	return shaped
}
