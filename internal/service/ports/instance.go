package ports

import (
	"context"
	"time"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type InstanceRepo interface {
	// Create persists an instance. For generated instances the store holds a
	// uniqueness constraint on (template, occurrence date); a losing
	// concurrent creator gets domain.ErrInstanceExists.
	Create(ctx context.Context, e *domain.EventInstance) error
	GetByID(ctx context.Context, id string) (*domain.EventInstance, error)
	ExistsForDate(ctx context.Context, templateID string, date time.Time) (bool, error)
	List(ctx context.Context, filter domain.InstanceFilter, now time.Time) ([]*domain.EventInstance, error)
	ListFutureByTemplate(ctx context.Context, templateID string, asOf time.Time) ([]*domain.EventInstance, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpiredGenerated removes generated instances whose end time is
	// before cutoff. Manual instances are never touched.
	DeleteExpiredGenerated(ctx context.Context, cutoff time.Time) (int64, error)
}
