package offer

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

type OfferDB struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	DriverID    uuid.UUID
	Status      string
	SentAt      time.Time
	ExpiresAt   *time.Time
	RespondedAt *time.Time
}

type OfferModifyDB struct {
	ID        *uuid.UUID
	RequestID *uuid.UUID
	DriverID  *uuid.UUID
	Status    *string
	SentAt    *time.Time
	ExpiresAt *time.Time
}
