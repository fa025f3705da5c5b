package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dispatch/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository reads the driver snapshot table maintained by the
// driver-profile subsystem.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// FindNear returns available, verified drivers within radiusMeters of the
// origin, nearest first. The haversine distance is computed in SQL so the
// radius cut and the ordering happen in one pass over the snapshot.
func (r *Repository) FindNear(ctx context.Context, origin entities.GeoPoint, radiusMeters float64, limit int) ([]entities.DriverCandidate, error) {
	query := `
		SELECT id, distance_meters
		FROM (
			SELECT id,
				2 * 6371000 * asin(sqrt(
					pow(sin(radians(lat - $1) / 2), 2) +
					cos(radians($1)) * cos(radians(lat)) *
					pow(sin(radians(lon - $2) / 2), 2)
				)) AS distance_meters
			FROM drivers
			WHERE available = TRUE AND verified = TRUE
		) AS nearby
		WHERE distance_meters <= $3
		ORDER BY distance_meters ASC
		LIMIT $4`

	rows, err := r.querier.Query(ctx, query, origin.Lat, origin.Lon, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("select nearby drivers: %w", err)
	}
	defer rows.Close()

	var candidates []entities.DriverCandidate
	for rows.Next() {
		var candidate entities.DriverCandidate
		if err := rows.Scan(&candidate.DriverID, &candidate.DistanceMeters); err != nil {
			return nil, fmt.Errorf("scan driver candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate driver candidates: %w", err)
	}

	return candidates, nil
}
