package ports

import (
	"context"

	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertEvent(ctx context.Context, e *domain.TransactionEvent) (created bool, err error)
}
