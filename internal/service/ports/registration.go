package ports

import (
	"context"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type RegistrationRepo interface {
	// Submit inserts r inside a single transaction that locks the instance
	// row and counts confirmed registrations. When capacity is exhausted the
	// status is downgraded to waitlist (if the instance allows it) or
	// domain.ErrCapacityExceeded is returned; otherwise the status set by
	// the caller (pending or confirmed) is kept.
	Submit(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	// Approve promotes a pending or waitlisted registration, re-checking
	// capacity under the same instance lock.
	Approve(ctx context.Context, id string, review domain.ReviewInput) error
	Reject(ctx context.Context, id string, review domain.ReviewInput) error
	Cancel(ctx context.Context, id string) error
	ListByInstance(ctx context.Context, instanceID string) ([]*domain.Registration, error)
	CountConfirmed(ctx context.Context, instanceID string) (int, error)
}
