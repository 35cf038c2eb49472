package ports

import (
	"context"
	"errors"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
)

// ErrUnknownDataset is returned by sources when the dataset name does not
// resolve to anything.
var ErrUnknownDataset = errors.New("unknown dataset")

type EventSourcePort interface {
	// ListEvents returns the full batch for one dataset. Sources may memoize
	// decoded batches; callers must treat the result as read-only.
	ListEvents(ctx context.Context, dataset string) (*domain.EventBatch, error)
}
