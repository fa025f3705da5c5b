package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/assignment"
	"dispatch/internal/service/matching"
)

const offerColumns = `id, request_id, driver_id, status, sent_at, expires_at, responded_at`

type Repository struct {
	querier Querier
	builder sq.StatementBuilderType
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *Repository) Create(ctx context.Context, offerModifyEntity entities.OfferModify) (*entities.Offer, error) {
	offerModifyDB := FromDomainModify(&offerModifyEntity)

	query := `
		INSERT INTO offers (id, request_id, driver_id, status, sent_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + offerColumns

	row := r.querier.QueryRow(ctx, query,
		offerModifyDB.ID,
		offerModifyDB.RequestID,
		offerModifyDB.DriverID,
		offerModifyDB.Status,
		offerModifyDB.SentAt,
		offerModifyDB.ExpiresAt,
	)

	created, err := scanOffer(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, matching.ErrOfferAlreadyExists
		}
		return nil, fmt.Errorf("insert offer: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	row := r.querier.QueryRow(ctx, query, id)

	offerDB, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrOfferNotFound
		}
		return nil, fmt.Errorf("select offer: %w", err)
	}

	return ToDomain(offerDB), nil
}

func (r *Repository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]entities.Offer, error) {
	query, args, err := r.builder.
		Select("id", "request_id", "driver_id", "status", "sent_at", "expires_at", "responded_at").
		From("offers").
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("sent_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list offers query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select offers by request: %w", err)
	}
	defer rows.Close()

	var offers []entities.Offer
	for rows.Next() {
		offerDB, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, *ToDomain(offerDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}

	return offers, nil
}

func (r *Repository) ListExpirable(ctx context.Context, now time.Time, limit int) ([]entities.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE status = $1 AND expires_at IS NOT NULL AND expires_at <= $2
		ORDER BY expires_at ASC
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, entities.OfferSent.String(), now, limit)
	if err != nil {
		return nil, fmt.Errorf("select expirable offers: %w", err)
	}
	defer rows.Close()

	var offers []entities.Offer
	for rows.Next() {
		offerDB, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expirable offer: %w", err)
		}
		offers = append(offers, *ToDomain(offerDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expirable offers: %w", err)
	}

	return offers, nil
}

// Transition moves an offer between statuses only when the current status
// still matches. A false result means another writer got there first.
func (r *Repository) Transition(ctx context.Context, id uuid.UUID, from, to entities.OfferStatusType, respondedAt time.Time) (bool, error) {
	query := `
		UPDATE offers
		SET status = $3, responded_at = $4
		WHERE id = $1 AND status = $2`

	tag, err := r.querier.Exec(ctx, query, id, from.String(), to.String(), respondedAt)
	if err != nil {
		return false, fmt.Errorf("transition offer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ExpireActive expires every still-sent offer of a request, optionally
// skipping one offer (the accepted one).
func (r *Repository) ExpireActive(ctx context.Context, requestID uuid.UUID, exclude *uuid.UUID, at time.Time) (int64, error) {
	builder := r.builder.
		Update("offers").
		Set("status", entities.OfferExpired.String()).
		Set("responded_at", at).
		Where(sq.Eq{"request_id": requestID}).
		Where(sq.Eq{"status": entities.OfferSent.String()})

	if exclude != nil {
		builder = builder.Where(sq.NotEq{"id": *exclude})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build expire offers query: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("expire active offers: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanOffer(row pgx.Row) (*OfferDB, error) {
	var offerDB OfferDB
	err := row.Scan(
		&offerDB.ID,
		&offerDB.RequestID,
		&offerDB.DriverID,
		&offerDB.Status,
		&offerDB.SentAt,
		&offerDB.ExpiresAt,
		&offerDB.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &offerDB, nil
}
