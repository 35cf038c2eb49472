package postgres

import (
	"context"

	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO transaction_events (
    id,
    dataset,
    user_id,
    created_at,
    status,
    payment_id,
    payment_name,
    method,
    country_id,
    country_name,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10, $11
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.TransactionEvent) (bool, error) {

	var paymentID any
	if e.PaymentID == "" {
		paymentID = nil
	} else {
		paymentID = e.PaymentID
	}

	var countryID any
	if e.CountryID == "" {
		countryID = nil
	} else {
		countryID = e.CountryID
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.Dataset,
		e.UserID,
		e.CreatedAt,
		e.Status,
		paymentID,
		e.PaymentName,
		e.Method,
		countryID,
		e.CountryName,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
