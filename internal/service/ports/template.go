package ports

import (
	"context"
	"time"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.EventTemplate) error
	GetByID(ctx context.Context, id string) (*domain.EventTemplate, error)
	List(ctx context.Context) ([]*domain.EventTemplate, error)
	Delete(ctx context.Context, id string) error
	// ListDue returns published recurring templates whose most recent
	// generated instance has ended as of asOf, or which have none yet.
	ListDue(ctx context.Context, asOf time.Time) ([]*domain.EventTemplate, error)
}
