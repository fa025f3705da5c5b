package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	requestservice "dispatch/internal/service/request"
)

const requestColumns = `id, restaurant_id, assigned_driver_id, status,
	origin_lat, origin_lon, origin_address,
	destination_lat, destination_lon, destination_address,
	fee_cents, notes, created_at, assigned_at, cancelled_at, delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, requestModifyEntity entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	requestModifyDB := FromDomainModify(&requestModifyEntity)

	query := `
		INSERT INTO delivery_requests (
			id, restaurant_id, status,
			origin_lat, origin_lon, origin_address,
			destination_lat, destination_lon, destination_address,
			fee_cents, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + requestColumns

	row := r.querier.QueryRow(ctx, query,
		requestModifyDB.ID,
		requestModifyDB.RestaurantID,
		requestModifyDB.Status,
		requestModifyDB.OriginLat,
		requestModifyDB.OriginLon,
		requestModifyDB.OriginAddress,
		requestModifyDB.DestinationLat,
		requestModifyDB.DestinationLon,
		requestModifyDB.DestinationAddress,
		requestModifyDB.FeeCents,
		requestModifyDB.Notes,
		requestModifyDB.CreatedAt,
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, fmt.Errorf("insert delivery request: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM delivery_requests WHERE id = $1`

	row := r.querier.QueryRow(ctx, query, id)

	requestDB, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, requestservice.ErrRequestNotFound
		}
		return nil, fmt.Errorf("select delivery request: %w", err)
	}

	return ToDomain(requestDB), nil
}

func (r *Repository) ListPending(ctx context.Context, limit int) ([]entities.DeliveryRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, entities.RequestPending.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("select pending delivery requests: %w", err)
	}
	defer rows.Close()

	var requests []entities.DeliveryRequest
	for rows.Next() {
		requestDB, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending delivery request: %w", err)
		}
		requests = append(requests, *ToDomain(requestDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending delivery requests: %w", err)
	}

	return requests, nil
}

// MarkProposed flips a pending request to proposed. A false result means
// the request left the pending state before the update landed.
func (r *Repository) MarkProposed(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $2
		WHERE id = $1 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, id,
		entities.RequestProposed.String(),
		entities.RequestPending.String(),
	)
	if err != nil {
		return false, fmt.Errorf("mark delivery request proposed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// AssignDriver is the winner resolution point. The WHERE clause admits at
// most one concurrent caller: every later attempt sees assigned_driver_id
// already set and gets ErrRequestUnavailable.
func (r *Repository) AssignDriver(ctx context.Context, id, driverID uuid.UUID, at time.Time) (*entities.DeliveryRequest, error) {
	query := `
		UPDATE delivery_requests
		SET status = $2, assigned_driver_id = $3, assigned_at = $4
		WHERE id = $1
			AND status IN ($5, $6)
			AND assigned_driver_id IS NULL
		RETURNING ` + requestColumns

	row := r.querier.QueryRow(ctx, query, id,
		entities.RequestAccepted.String(),
		driverID,
		at,
		entities.RequestPending.String(),
		entities.RequestProposed.String(),
	)

	requestDB, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, requestservice.ErrRequestUnavailable
		}
		return nil, fmt.Errorf("assign driver to delivery request: %w", err)
	}

	return ToDomain(requestDB), nil
}

func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) (*entities.DeliveryRequest, error) {
	query := `
		UPDATE delivery_requests
		SET status = $2, cancelled_at = $3
		WHERE id = $1 AND status NOT IN ($4, $5)
		RETURNING ` + requestColumns

	row := r.querier.QueryRow(ctx, query, id,
		entities.RequestCancelled.String(),
		at,
		entities.RequestDelivered.String(),
		entities.RequestCancelled.String(),
	)

	requestDB, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			stored, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			// An existing row the update skipped is already terminal.
			if stored.Status.IsTerminal() {
				return nil, fmt.Errorf("%w: status is %s", requestservice.ErrInvalidStatus, stored.Status)
			}
			return nil, requestservice.ErrInvalidStatus
		}
		return nil, fmt.Errorf("cancel delivery request: %w", err)
	}

	return ToDomain(requestDB), nil
}

func (r *Repository) MarkInDelivery(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $2
		WHERE id = $1 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, id,
		entities.RequestInDelivery.String(),
		entities.RequestAccepted.String(),
	)
	if err != nil {
		return false, fmt.Errorf("mark delivery request in delivery: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $2, delivered_at = $3
		WHERE id = $1 AND status = $4`

	tag, err := r.querier.Exec(ctx, query, id,
		entities.RequestDelivered.String(),
		at,
		entities.RequestInDelivery.String(),
	)
	if err != nil {
		return false, fmt.Errorf("mark delivery request delivered: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanRequest(row pgx.Row) (*RequestDB, error) {
	var requestDB RequestDB
	err := row.Scan(
		&requestDB.ID,
		&requestDB.RestaurantID,
		&requestDB.AssignedDriverID,
		&requestDB.Status,
		&requestDB.OriginLat,
		&requestDB.OriginLon,
		&requestDB.OriginAddress,
		&requestDB.DestinationLat,
		&requestDB.DestinationLon,
		&requestDB.DestinationAddress,
		&requestDB.FeeCents,
		&requestDB.Notes,
		&requestDB.CreatedAt,
		&requestDB.AssignedAt,
		&requestDB.CancelledAt,
		&requestDB.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	return &requestDB, nil
}
