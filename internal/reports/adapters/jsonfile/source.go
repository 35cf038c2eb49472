package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/labstack/gommon/log"

	"github.com/marcelinaiux/transaction-dashboard/internal/monitoring"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/ports"
)

// Source serves dataset batches from JSON array files on disk. Decoded
// batches are memoized per dataset so interactive re-filtering does not
// re-read the file.
type Source struct {
	paths map[string]string // dataset name -> file path

	mu    sync.Mutex
	cache map[string]*domain.EventBatch
}

func NewSource(paths map[string]string) *Source {
	return &Source{
		paths: paths,
		cache: make(map[string]*domain.EventBatch),
	}
}

var _ ports.EventSourcePort = (*Source)(nil)

func (s *Source) ListEvents(ctx context.Context, dataset string) (*domain.EventBatch, error) {
	path, ok := s.paths[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrUnknownDataset, dataset)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if batch, ok := s.cache[dataset]; ok {
		return batch, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", dataset, err)
	}

	batch, err := decodeBatch(data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", dataset, err)
	}

	if len(batch.MissingFields) > 0 {
		log.Warnf("dataset %s is missing columns: %v", dataset, batch.MissingFields)
	}

	monitoring.DatasetLoads.WithLabelValues(dataset).Inc()

	s.cache[dataset] = batch
	return batch, nil
}

type eventRecord struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	CreatedAt   int64  `json:"created_at"`
	Status      string `json:"status"`
	PaymentID   string `json:"payment_id"`
	PaymentName string `json:"payment_name"`
	Method      string `json:"method"`
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
}

func decodeBatch(data []byte) (*domain.EventBatch, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	events := make([]domain.TransactionEvent, 0, len(raws))

	for _, raw := range raws {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			return nil, err
		}
		for k := range keys {
			seen[k] = true
		}

		var rec eventRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// A badly typed field degrades that column only; the record
			// stays with whatever did decode.
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return nil, err
			}
		}

		events = append(events, domain.TransactionEvent{
			ID:          rec.ID,
			UserID:      rec.UserID,
			CreatedAt:   rec.CreatedAt,
			Status:      rec.Status,
			PaymentID:   rec.PaymentID,
			PaymentName: rec.PaymentName,
			Method:      rec.Method,
			CountryID:   rec.CountryID,
			CountryName: rec.CountryName,
		})
	}

	// A field counts as missing only when no record in the batch carries the
	// key, so a legitimate zero value never trips the diagnostic.
	var missing []string
	for _, f := range domain.RequiredFields {
		if !seen[f] {
			missing = append(missing, f)
		}
	}

	return &domain.EventBatch{Events: events, MissingFields: missing}, nil
}
