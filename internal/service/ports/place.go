package ports

import (
	"context"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type PlaceRepo interface {
	ListWithCoordinates(ctx context.Context) ([]*domain.Place, error)
}
