package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcelinaiux/transaction-dashboard/internal/monitoring"
	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/ports"
)

var (
	ErrInvalidEvent   = errors.New("invalid transaction event")
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrFutureTime     = errors.New("created_at cannot be in the future")
)

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo}
}

type StoreEventInput struct {
	ID          string
	Dataset     string
	UserID      string
	CreatedAt   int64 // ms since epoch
	Status      string
	PaymentID   string
	PaymentName string
	Method      string
	CountryID   string
	CountryName string
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {

	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	id := in.ID
	if id == "" {
		// Upstream exports sometimes omit the id; generate one so the row is
		// still addressable. Generated ids never dedupe.
		id = uuid.NewString()
	}

	e := &domain.TransactionEvent{
		ID:          id,
		Dataset:     in.Dataset,
		UserID:      in.UserID,
		CreatedAt:   in.CreatedAt,
		Status:      in.Status,
		PaymentID:   in.PaymentID,
		PaymentName: in.PaymentName,
		Method:      in.Method,
		CountryID:   in.CountryID,
		CountryName: in.CountryName,
		DedupeKey:   buildDedupeKey(in, id),
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	if created {
		monitoring.TransactionsIngested.Inc()
	} else {
		monitoring.TransactionsDuplicate.Inc()
	}

	return created, nil
}

func buildDedupeKey(in StoreEventInput, id string) string {
	// id + user_id + status + created_at: the same lifecycle event replayed
	// by an upstream export is a duplicate, a new status for the same id is not.
	return fmt.Sprintf("%s|%s|%s|%d",
		id,
		in.UserID,
		in.Status,
		in.CreatedAt,
	)
}

type BulkStoreEventsInput struct {
	Events []StoreEventInput
}

type BulkStoreEventsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreEventUseCase) BulkStoreEvents(ctx context.Context, in BulkStoreEventsInput) (BulkStoreEventsResult, error) {
	var res BulkStoreEventsResult

	for _, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {

	if in.UserID == "" || in.Status == "" {
		return ErrInvalidEvent
	}

	if in.Dataset != domain.DatasetDeposit && in.Dataset != domain.DatasetWithdraw {
		return ErrInvalidDataset
	}

	now := time.Now().UnixMilli()
	if in.CreatedAt > now {
		return ErrFutureTime
	}

	return nil
}
