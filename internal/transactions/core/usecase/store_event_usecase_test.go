package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/usecase"
)

// Fake repository implementing EventRepositoryPort
type fakeEventRepo struct {
	InsertFn func(ctx context.Context, e *domain.TransactionEvent) (bool, error)
}

func (f *fakeEventRepo) InsertEvent(ctx context.Context, e *domain.TransactionEvent) (bool, error) {
	return f.InsertFn(ctx, e)
}

func validInput() usecase.StoreEventInput {
	return usecase.StoreEventInput{
		ID:          "tx_1",
		Dataset:     domain.DatasetDeposit,
		UserID:      "user_123",
		CreatedAt:   time.Now().Add(-time.Minute).UnixMilli(),
		Status:      domain.StatusAccepted,
		PaymentID:   "pm_1",
		PaymentName: "card",
		Method:      "visa",
		CountryID:   "c_1",
		CountryName: "FR",
	}
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestStoreEvent_Success(t *testing.T) {
	called := false

	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.TransactionEvent) (bool, error) {
			called = true

			if e.ID != "tx_1" {
				t.Fatalf("expected id 'tx_1', got %s", e.ID)
			}
			if e.UserID != "user_123" {
				t.Fatalf("expected user 'user_123', got %s", e.UserID)
			}
			if e.Status != domain.StatusAccepted {
				t.Fatalf("expected status accepted, got %s", e.Status)
			}
			if e.DedupeKey == "" {
				t.Fatalf("expected dedupe key, got empty")
			}

			return true, nil
		},
	}

	uc := usecase.NewStoreEventUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if !called {
		t.Fatalf("repository InsertEvent was not called")
	}
}

// ------------------------------------------------------------
// ID FALLBACK
// ------------------------------------------------------------

func TestStoreEvent_GeneratesIDWhenEmpty(t *testing.T) {
	var gotID string

	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.TransactionEvent) (bool, error) {
			gotID = e.ID
			return true, nil
		},
	}

	uc := usecase.NewStoreEventUseCase(repo)

	in := validInput()
	in.ID = ""

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID == "" {
		t.Fatalf("expected a generated id")
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestStoreEvent_MissingUserOrStatus(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	in := validInput()
	in.UserID = ""

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for missing user, got %v", err)
	}

	in = validInput()
	in.Status = ""

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for missing status, got %v", err)
	}
}

func TestStoreEvent_InvalidDataset(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	in := validInput()
	in.Dataset = "bonus"

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrInvalidDataset) {
		t.Fatalf("expected ErrInvalidDataset, got %v", err)
	}
}

func TestStoreEvent_FutureTimestamp(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	in := validInput()
	in.CreatedAt = time.Now().Add(time.Hour).UnixMilli()

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR
// ------------------------------------------------------------

func TestStoreEvent_RepositoryError(t *testing.T) {
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.TransactionEvent) (bool, error) {
			return false, errors.New("db failure")
		},
	}

	uc := usecase.NewStoreEventUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}
