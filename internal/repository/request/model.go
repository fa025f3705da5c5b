package request

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type RequestDB struct {
	ID                 uuid.UUID
	RestaurantID       uuid.UUID
	AssignedDriverID   *uuid.UUID
	Status             string
	OriginLat          float64
	OriginLon          float64
	OriginAddress      string
	DestinationLat     float64
	DestinationLon     float64
	DestinationAddress string
	FeeCents           int64
	Notes              string
	CreatedAt          time.Time
	AssignedAt         *time.Time
	CancelledAt        *time.Time
	DeliveredAt        *time.Time
}

type RequestModifyDB struct {
	ID                 *uuid.UUID
	RestaurantID       *uuid.UUID
	Status             *string
	OriginLat          *float64
	OriginLon          *float64
	OriginAddress      *string
	DestinationLat     *float64
	DestinationLon     *float64
	DestinationAddress *string
	FeeCents           *int64
	Notes              *string
	CreatedAt          *time.Time
}
