package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkStoreEvents(ctx context.Context, in usecase.BulkStoreEventsInput) (usecase.BulkStoreEventsResult, error)
}

type TransactionHandler struct {
	storeUC StoreEventUseCase
}

func NewTransactionHandler(storeUC StoreEventUseCase) *TransactionHandler {
	return &TransactionHandler{storeUC: storeUC}
}

// CreateTransaction godoc
// @Summary Ingest a transaction lifecycle event
// @Description Stores a single transaction event with idempotency handling
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction event payload"
// @Success 201 {object} CreateTransactionResponse
// @Success 200 {object} CreateTransactionResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req CreateTransactionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.StoreEventInput{
		ID:          req.ID,
		Dataset:     req.Dataset,
		UserID:      req.UserID,
		CreatedAt:   req.CreatedAt,
		Status:      req.Status,
		PaymentID:   req.PaymentID,
		PaymentName: req.PaymentName,
		Method:      req.Method,
		CountryID:   req.CountryID,
		CountryName: req.CountryName,
	}

	created, err := h.storeUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrInvalidDataset),
			errors.Is(err, usecase.ErrFutureTime):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateTransactionResponse{
			Status: "duplicate",
		})
	}

	return c.Status(http.StatusCreated).JSON(CreateTransactionResponse{
		Status: "created",
	})
}

// BulkCreateTransactions godoc
// @Summary Bulk ingest transaction events
// @Description Accepts a list of transaction events and stores them individually
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body BulkCreateTransactionsRequest true "Bulk transaction payload"
// @Success 201 {object} BulkCreateTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/bulk [post]
func (h *TransactionHandler) BulkCreateTransactions(c *fiber.Ctx) error {
	var req BulkCreateTransactionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = usecase.StoreEventInput{
			ID:          e.ID,
			Dataset:     e.Dataset,
			UserID:      e.UserID,
			CreatedAt:   e.CreatedAt,
			Status:      e.Status,
			PaymentID:   e.PaymentID,
			PaymentName: e.PaymentName,
			Method:      e.Method,
			CountryID:   e.CountryID,
			CountryName: e.CountryName,
		}
	}

	result, err := h.storeUC.BulkStoreEvents(
		c.UserContext(),
		usecase.BulkStoreEventsInput{Events: inputs},
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrInvalidDataset),
			errors.Is(err, usecase.ErrFutureTime):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateTransactionsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}
