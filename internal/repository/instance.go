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

const instanceColumns = `id, template_id, title, description, location, latitude, longitude,
		start_time, end_time, capacity, tags, published, generated,
		requires_approval, allow_waitlist, form_fields, created_at, updated_at`

type InstanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInstanceRepo(db *dbpg.DB) *InstanceRepository {
	return &InstanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the instance. The schema holds a unique index on
// (template_id, occurrence date), so a concurrent generator replica losing
// the race gets domain.ErrInstanceExists instead of a duplicate row.
func (r *InstanceRepository) Create(ctx context.Context, e *domain.EventInstance) error {
	fields, err := json.Marshal(e.FormFields)
	if err != nil {
		return fmt.Errorf("marshal form fields: %w", err)
	}

	query := `INSERT INTO event_instances
			  (id, template_id, title, description, location, latitude, longitude,
			   start_time, end_time, capacity, tags, published, generated,
			   requires_approval, allow_waitlist, form_fields, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.TemplateID, e.Title, e.Description, e.Location, e.Latitude, e.Longitude,
		e.StartTime, e.EndTime, e.Capacity, pq.Array(e.Tags), e.Published, e.Generated,
		e.RequiresApproval, e.AllowWaitlist, fields, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrInstanceExists
		}
		return fmt.Errorf("insert instance: %w", err)
	}

	return nil
}

func (r *InstanceRepository) GetByID(ctx context.Context, id string) (*domain.EventInstance, error) {
	query := `SELECT ` + instanceColumns + `
			  FROM event_instances
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get instance: %w", err)
	}

	e, err := scanInstance(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("scan instance: %w", err)
	}

	return e, nil
}

func (r *InstanceRepository) ExistsForDate(ctx context.Context, templateID string, date time.Time) (bool, error) {
	query := `SELECT EXISTS (
			      SELECT 1 FROM event_instances
			      WHERE template_id = $1
			        AND (start_time AT TIME ZONE 'UTC')::date = $2::date
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, templateID, date.UTC().Format("2006-01-02"))
	if err != nil {
		return false, fmt.Errorf("check instance date: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan instance date check: %w", err)
	}

	return exists, nil
}

// List returns published instances for the requested period. An instance
// with no end time counts as live for the whole UTC calendar day it starts on.
func (r *InstanceRepository) List(ctx context.Context, filter domain.InstanceFilter, now time.Time) ([]*domain.EventInstance, error) {
	query := `SELECT ` + instanceColumns + `
			  FROM event_instances
			  WHERE published = TRUE`
	args := []any{}

	switch filter.Period {
	case domain.PeriodNow:
		query += ` AND start_time <= $1
			   AND ((end_time IS NOT NULL AND end_time >= $1)
			     OR (end_time IS NULL AND (start_time AT TIME ZONE 'UTC')::date = ($1 AT TIME ZONE 'UTC')::date))`
		args = append(args, now)
	case domain.PeriodUpcoming:
		query += ` AND start_time > $1`
		args = append(args, now)
	case domain.PeriodPast:
		query += ` AND ((end_time IS NOT NULL AND end_time < $1)
			     OR (end_time IS NULL AND (start_time AT TIME ZONE 'UTC')::date < ($1 AT TIME ZONE 'UTC')::date))`
		args = append(args, now)
	}

	if filter.TemplateID != "" {
		query += fmt.Sprintf(` AND template_id = $%d`, len(args)+1)
		args = append(args, filter.TemplateID)
	}

	if filter.Period == domain.PeriodPast {
		query += ` ORDER BY start_time DESC`
	} else {
		query += ` ORDER BY start_time ASC`
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventInstance
	for rows.Next() {
		e, err := scanInstance(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan instance: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *InstanceRepository) ListFutureByTemplate(ctx context.Context, templateID string, asOf time.Time) ([]*domain.EventInstance, error) {
	query := `SELECT ` + instanceColumns + `
			  FROM event_instances
			  WHERE template_id = $1 AND start_time > $2
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, templateID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list future instances: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventInstance
	for rows.Next() {
		e, err := scanInstance(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan future instance: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *InstanceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM event_instances WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete instance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("instance rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrInstanceNotFound
	}

	return nil
}

// DeleteExpiredGenerated prunes generated instances that ended before
// cutoff. Registrations cascade; manual instances are never candidates.
func (r *InstanceRepository) DeleteExpiredGenerated(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM event_instances
			  WHERE generated = TRUE
			    AND COALESCE(end_time, start_time) < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired instances: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired rows affected: %w", err)
	}

	return affected, nil
}

func scanInstance(scan func(dest ...any) error) (*domain.EventInstance, error) {
	var e domain.EventInstance
	var fields []byte
	if err := scan(
		&e.ID, &e.TemplateID, &e.Title, &e.Description, &e.Location, &e.Latitude, &e.Longitude,
		&e.StartTime, &e.EndTime, &e.Capacity, pq.Array(&e.Tags), &e.Published, &e.Generated,
		&e.RequiresApproval, &e.AllowWaitlist, &fields, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &e.FormFields); err != nil {
			return nil, fmt.Errorf("unmarshal form fields: %w", err)
		}
	}
	return &e, nil
}
