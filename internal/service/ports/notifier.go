package ports

import (
	"context"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type RegistrationNotifier interface {
	NotifySubmitted(ctx context.Context, r *domain.Registration, e *domain.EventInstance)
	NotifyApproved(ctx context.Context, r *domain.Registration, e *domain.EventInstance)
	NotifyRejected(ctx context.Context, r *domain.Registration, e *domain.EventInstance)
	NotifyCancelled(ctx context.Context, r *domain.Registration, e *domain.EventInstance)
}
