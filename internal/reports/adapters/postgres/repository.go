package postgres

import (
	"context"
	"fmt"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// EventRepository reads stored transaction events back out as a report batch.
// The aggregation itself happens in memory: the verify/accept correlation is
// a stateful single pass that does not map onto one SQL query.
type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventSourcePort = (*EventRepository)(nil)

const listEventsSQL = `
SELECT
    id,
    user_id,
    created_at,
    status,
    COALESCE(payment_id, ''),
    payment_name,
    method,
    COALESCE(country_id, ''),
    country_name
FROM transaction_events
WHERE dataset = $1
ORDER BY user_id, payment_name, created_at`

func (r *EventRepository) ListEvents(ctx context.Context, dataset string) (*domain.EventBatch, error) {
	if dataset != "deposit" && dataset != "withdraw" {
		return nil, fmt.Errorf("%w: %s", ports.ErrUnknownDataset, dataset)
	}

	rows, err := r.db.QueryContext(ctx, listEventsSQL, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.TransactionEvent{}
	for rows.Next() {
		var e domain.TransactionEvent
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CreatedAt,
			&e.Status,
			&e.PaymentID,
			&e.PaymentName,
			&e.Method,
			&e.CountryID,
			&e.CountryName,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Every column exists in the table, so there is nothing to report as
	// missing. An empty result is a valid (empty) batch.
	return &domain.EventBatch{Events: events}, nil
}
