package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type PlaceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPlaceRepo(db *dbpg.DB) *PlaceRepository {
	return &PlaceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PlaceRepository) ListWithCoordinates(ctx context.Context) ([]*domain.Place, error) {
	query := `SELECT id, name, category, latitude, longitude
			  FROM places
			  WHERE latitude IS NOT NULL AND longitude IS NOT NULL`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var res []*domain.Place
	for rows.Next() {
		var p domain.Place
		if err = rows.Scan(&p.ID, &p.Name, &p.Category, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
