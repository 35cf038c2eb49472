package usecase

import (
	"context"
	"errors"

	"github.com/marcelinaiux/transaction-dashboard/internal/monitoring"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/ports"
)

var (
	ErrInvalidDataset = errors.New("dataset is required")
	ErrInvalidGroupBy = errors.New("invalid group_by value")
)

type GetStatusReportInput struct {
	Dataset string
	GroupBy string // "country_name" / "payment_name"
}

type GetStatusReportUseCase struct {
	source ports.EventSourcePort
}

func NewGetStatusReportUseCase(source ports.EventSourcePort) *GetStatusReportUseCase {
	return &GetStatusReportUseCase{source: source}
}

// Execute validates the input, loads the batch and runs both status
// aggregations over it.
func (uc *GetStatusReportUseCase) Execute(ctx context.Context, in GetStatusReportInput) (*domain.StatusReport, error) {

	if in.Dataset == "" {
		return nil, ErrInvalidDataset
	}

	if in.GroupBy != domain.GroupByCountry && in.GroupBy != domain.GroupByPayment {
		return nil, ErrInvalidGroupBy
	}

	batch, err := uc.source.ListEvents(ctx, in.Dataset)
	if err != nil {
		return nil, err
	}

	report := &domain.StatusReport{
		Dataset:       in.Dataset,
		GroupBy:       in.GroupBy,
		Overall:       OverallStatusCounts(batch.Events),
		ByDimension:   StatusByDimension(batch.Events, in.GroupBy),
		MissingFields: batch.MissingFields,
	}

	monitoring.ReportsServed.WithLabelValues("status").Inc()

	return report, nil
}
