package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

const templateColumns = `id, title, description, location, latitude, longitude,
		start_time, end_time, recurrence, recurrence_end, capacity, tags,
		published, requires_approval, allow_waitlist, form_fields, created_at, updated_at`

type TemplateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTemplateRepo(db *dbpg.DB) *TemplateRepository {
	return &TemplateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.EventTemplate) error {
	fields, err := json.Marshal(t.FormFields)
	if err != nil {
		return fmt.Errorf("marshal form fields: %w", err)
	}

	query := `INSERT INTO event_templates
			  (id, title, description, location, latitude, longitude,
			   start_time, end_time, recurrence, recurrence_end, capacity, tags,
			   published, requires_approval, allow_waitlist, form_fields, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Title, t.Description, t.Location, t.Latitude, t.Longitude,
		t.StartTime, t.EndTime, t.Recurrence, t.RecurrenceEnd, t.Capacity, pq.Array(t.Tags),
		t.Published, t.RequiresApproval, t.AllowWaitlist, fields, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}

	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.EventTemplate, error) {
	query := `SELECT ` + templateColumns + `
			  FROM event_templates
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	t, err := scanTemplate(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("scan template: %w", err)
	}

	return t, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]*domain.EventTemplate, error) {
	query := `SELECT ` + templateColumns + `
			  FROM event_templates
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventTemplate
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

// ListDue selects published recurring templates with no generated instance
// still running or ahead of asOf. These are the ones the generator must
// extend on the next tick.
func (r *TemplateRepository) ListDue(ctx context.Context, asOf time.Time) ([]*domain.EventTemplate, error) {
	query := `SELECT ` + templateColumns + `
			  FROM event_templates t
			  WHERE t.published = TRUE
			    AND t.recurrence <> 'none'
			    AND NOT EXISTS (
			        SELECT 1 FROM event_instances i
			        WHERE i.template_id = t.id
			          AND i.generated = TRUE
			          AND COALESCE(i.end_time, i.start_time) > $1
			    )
			  ORDER BY t.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("list due templates: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventTemplate
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan due template: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

// Delete removes the template. Instances keep existing with template_id
// nulled by the FK, so past occurrences survive.
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM event_templates WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("template rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTemplateNotFound
	}

	return nil
}

func scanTemplate(scan func(dest ...any) error) (*domain.EventTemplate, error) {
	var t domain.EventTemplate
	var fields []byte
	if err := scan(
		&t.ID, &t.Title, &t.Description, &t.Location, &t.Latitude, &t.Longitude,
		&t.StartTime, &t.EndTime, &t.Recurrence, &t.RecurrenceEnd, &t.Capacity, pq.Array(&t.Tags),
		&t.Published, &t.RequiresApproval, &t.AllowWaitlist, &fields, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &t.FormFields); err != nil {
			return nil, fmt.Errorf("unmarshal form fields: %w", err)
		}
	}
	return &t, nil
}
