package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
)

// feedbackColumns must match the Scan order in scanRecord.
const feedbackColumns = `id, author_id, author_name, author_email, category, rating, title, comment,
	images, location, related_entity_id, related_entity_name, submitted_at, is_anonymous,
	tags, sentiment, status, admin_response`

// FeedbackRepo implements domain.FeedbackRepository backed by PostgreSQL.
// Structured fields (sentiment, location, admin response, string lists) are
// stored as JSONB so the schema stays stable while the classifier evolves.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepo creates a FeedbackRepo from the shared connection pool.
func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

func marshalNullable(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	return data, nil
}

func (r *FeedbackRepo) Insert(ctx context.Context, record *domain.FeedbackRecord) error {
	sentiment, err := json.Marshal(record.Sentiment)
	if err != nil {
		return fmt.Errorf("failed to marshal sentiment: %w", err)
	}

	var images, location, tags, adminResponse any
	if record.Images != nil {
		if images, err = marshalNullable(record.Images); err != nil {
			return err
		}
	}
	if record.Location != nil {
		if location, err = marshalNullable(record.Location); err != nil {
			return err
		}
	}
	if record.Tags != nil {
		if tags, err = marshalNullable(record.Tags); err != nil {
			return err
		}
	}
	if record.AdminResponse != nil {
		if adminResponse, err = marshalNullable(record.AdminResponse); err != nil {
			return err
		}
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO feedback (id, author_id, author_name, author_email, category, rating, title, comment,
			images, location, related_entity_id, related_entity_name, submitted_at, is_anonymous,
			tags, sentiment, status, admin_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
	`, record.ID, record.AuthorID, record.AuthorName, record.AuthorEmail, string(record.Category),
		record.Rating, record.Title, record.Comment, images, location,
		record.RelatedEntityID, record.RelatedEntityName, record.Timestamp, record.IsAnonymous,
		tags, sentiment, string(record.Status), adminResponse)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) Get(ctx context.Context, id uuid.UUID) (*domain.FeedbackRecord, error) {
	record, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+feedbackColumns+` FROM feedback WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedbackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return record, nil
}

func (r *FeedbackRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, response *domain.AdminResponse) (*domain.FeedbackRecord, error) {
	var adminResponse any
	if response != nil {
		var err error
		if adminResponse, err = marshalNullable(response); err != nil {
			return nil, err
		}
	}

	// COALESCE keeps a previously stored response when the update carries none.
	record, err := scanRecord(r.pool.QueryRow(ctx, `
		UPDATE feedback
		SET status = $1, admin_response = COALESCE($2, admin_response), updated_at = NOW()
		WHERE id = $3
		RETURNING `+feedbackColumns,
		string(status), adminResponse, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedbackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update feedback status: %w", err)
	}
	return record, nil
}

func (r *FeedbackRepo) Query(ctx context.Context, filter domain.QueryFilter) ([]*domain.FeedbackRecord, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback`

	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != nil {
		add("category = $%d", string(*filter.Category))
	}
	if filter.Sentiment != nil {
		add("sentiment->>'overall' = $%d", string(*filter.Sentiment))
	}
	if filter.Rating != nil {
		add("rating = $%d", *filter.Rating)
	}
	if filter.Urgency != nil {
		add("sentiment->>'urgency' = $%d", string(*filter.Urgency))
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE $%d OR comment ILIKE $%d OR EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(COALESCE(tags, '[]'::jsonb)) AS tag
				WHERE tag ILIKE $%d))`, n, n, n))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY submitted_at DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var records []*domain.FeedbackRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}
	return records, nil
}

// escapeLike neutralizes LIKE wildcards so a search term always matches as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func scanRecord(row pgx.Row) (*domain.FeedbackRecord, error) {
	var record domain.FeedbackRecord
	var category, status string
	var images, location, tags, sentiment, adminResponse []byte

	err := row.Scan(
		&record.ID, &record.AuthorID, &record.AuthorName, &record.AuthorEmail,
		&category, &record.Rating, &record.Title, &record.Comment,
		&images, &location, &record.RelatedEntityID, &record.RelatedEntityName,
		&record.Timestamp, &record.IsAnonymous, &tags, &sentiment, &status, &adminResponse,
	)
	if err != nil {
		return nil, err
	}

	record.Category = domain.Category(category)
	record.Status = domain.Status(status)

	if err := json.Unmarshal(sentiment, &record.Sentiment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sentiment: %w", err)
	}
	if images != nil {
		if err := json.Unmarshal(images, &record.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal images: %w", err)
		}
	}
	if location != nil {
		record.Location = &domain.Location{}
		if err := json.Unmarshal(location, record.Location); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location: %w", err)
		}
	}
	if tags != nil {
		if err := json.Unmarshal(tags, &record.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	if adminResponse != nil {
		record.AdminResponse = &domain.AdminResponse{}
		if err := json.Unmarshal(adminResponse, record.AdminResponse); err != nil {
			return nil, fmt.Errorf("failed to unmarshal admin response: %w", err)
		}
	}

	return &record, nil
}
