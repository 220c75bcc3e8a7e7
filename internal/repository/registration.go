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

const registrationColumns = `id, instance_id, user_id, name, email, status, form_data,
		reviewed_by, reviewed_at, review_notes, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Submit inserts the registration with the capacity check and the insert in
// one transaction. The instance row is locked so two concurrent submissions
// cannot both pass the confirmed count.
func (r *RegistrationRepository) Submit(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity sql.NullInt64
	var allowWaitlist bool
	lockQuery := `SELECT capacity, allow_waitlist FROM event_instances WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, reg.InstanceID).Scan(&capacity, &allowWaitlist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInstanceNotFound
		}
		return fmt.Errorf("lock instance: %w", err)
	}

	if capacity.Valid {
		confirmed, err := countConfirmedTx(ctx, tx, reg.InstanceID)
		if err != nil {
			return err
		}
		if int64(confirmed) >= capacity.Int64 {
			if !allowWaitlist {
				return domain.ErrCapacityExceeded
			}
			reg.Status = domain.RegistrationStatusWaitlist
		}
	}

	formData, err := json.Marshal(reg.FormData)
	if err != nil {
		return fmt.Errorf("marshal form data: %w", err)
	}

	query := `INSERT INTO registrations
			  (id, instance_id, user_id, name, email, status, form_data, review_notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8, $9)`
	_, err = tx.ExecContext(
		ctx, query,
		reg.ID, reg.InstanceID, reg.UserID, reg.Name, reg.Email,
		reg.Status, formData, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

// Approve promotes a pending or waitlisted registration to confirmed.
// Capacity is re-checked under the instance lock: concurrent submissions may
// have filled the event since the registration was submitted.
func (r *RegistrationRepository) Approve(ctx context.Context, id string, review domain.ReviewInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.RegistrationStatus
	var instanceID string
	regQuery := `SELECT status, instance_id FROM registrations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, regQuery, id).Scan(&status, &instanceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRegistrationNotFound
		}
		return fmt.Errorf("get registration: %w", err)
	}

	if status.Final() {
		return domain.ErrRegistrationFinal
	}
	if status == domain.RegistrationStatusConfirmed {
		return domain.ErrRegistrationNotPending
	}

	var capacity sql.NullInt64
	lockQuery := `SELECT capacity FROM event_instances WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, instanceID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInstanceNotFound
		}
		return fmt.Errorf("lock instance: %w", err)
	}

	if capacity.Valid {
		confirmed, err := countConfirmedTx(ctx, tx, instanceID)
		if err != nil {
			return err
		}
		if int64(confirmed) >= capacity.Int64 {
			return domain.ErrCapacityExceeded
		}
	}

	query := `UPDATE registrations
			  SET status = $2, reviewed_by = $3, reviewed_at = now(), review_notes = $4, updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, domain.RegistrationStatusConfirmed, review.Reviewer, review.Notes); err != nil {
		return fmt.Errorf("approve registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) Reject(ctx context.Context, id string, review domain.ReviewInput) error {
	query := `UPDATE registrations
			  SET status = $2, reviewed_by = $3, reviewed_at = now(), review_notes = $4, updated_at = now()
			  WHERE id = $1 AND status = ANY($5)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.RegistrationStatusRejected, review.Reviewer, review.Notes,
		pq.Array(domain.ApprovableStatuses),
	)
	if err != nil {
		return fmt.Errorf("reject registration: %w", err)
	}

	return r.checkTransition(ctx, res, id)
}

func (r *RegistrationRepository) Cancel(ctx context.Context, id string) error {
	cancellable := []domain.RegistrationStatus{
		domain.RegistrationStatusPending,
		domain.RegistrationStatusConfirmed,
		domain.RegistrationStatusWaitlist,
	}

	query := `UPDATE registrations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.RegistrationStatusCancelled, pq.Array(cancellable),
	)
	if err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	return r.checkTransition(ctx, res, id)
}

// checkTransition explains a zero-row status update: unknown id, terminal
// status, or a status outside the allowed set.
func (r *RegistrationRepository) checkTransition(ctx context.Context, res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status.Final() {
		return domain.ErrRegistrationFinal
	}
	return domain.ErrRegistrationNotPending
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) ListByInstance(ctx context.Context, instanceID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE instance_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, instanceID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) CountConfirmed(ctx context.Context, instanceID string) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE instance_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, instanceID, domain.RegistrationStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan confirmed count: %w", err)
	}

	return count, nil
}

func countConfirmedTx(ctx context.Context, tx *sql.Tx, instanceID string) (int, error) {
	var confirmed int
	query := `SELECT COUNT(*) FROM registrations WHERE instance_id = $1 AND status = $2`
	if err := tx.QueryRowContext(ctx, query, instanceID, domain.RegistrationStatusConfirmed).Scan(&confirmed); err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}
	return confirmed, nil
}

func scanRegistration(scan func(dest ...any) error) (*domain.Registration, error) {
	var reg domain.Registration
	var formData []byte
	if err := scan(
		&reg.ID, &reg.InstanceID, &reg.UserID, &reg.Name, &reg.Email, &reg.Status, &formData,
		&reg.ReviewedBy, &reg.ReviewedAt, &reg.ReviewNotes, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(formData) > 0 {
		if err := json.Unmarshal(formData, &reg.FormData); err != nil {
			return nil, fmt.Errorf("unmarshal form data: %w", err)
		}
	}
	return &reg, nil
}
