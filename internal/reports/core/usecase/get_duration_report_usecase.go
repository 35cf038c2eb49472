package usecase

import (
	"context"

	"github.com/marcelinaiux/transaction-dashboard/internal/monitoring"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/ports"
)

type GetDurationReportInput struct {
	Dataset string
	GroupBy string // "country_name" / "payment_name"
}

type GetDurationReportUseCase struct {
	source ports.EventSourcePort
}

func NewGetDurationReportUseCase(source ports.EventSourcePort) *GetDurationReportUseCase {
	return &GetDurationReportUseCase{source: source}
}

// Execute validates the input, loads the batch, correlates verify-code events
// with acceptances and aggregates the resulting durations. When the batch has
// no status or created_at column at all, correlation is impossible and the
// report comes back with zero rows plus the diagnostic.
func (uc *GetDurationReportUseCase) Execute(ctx context.Context, in GetDurationReportInput) (*domain.DurationReport, error) {

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

	report := &domain.DurationReport{
		Dataset:       in.Dataset,
		GroupBy:       in.GroupBy,
		MissingFields: batch.MissingFields,
	}

	if batch.Missing("status") || batch.Missing("created_at") {
		return report, nil
	}

	res := CorrelateVerifications(batch.Events)

	report.Rows = AggregateDurations(res.Samples, in.GroupBy)
	report.ExcludedOutliers = res.ExcludedOutliers

	monitoring.OutlierDurationsExcluded.Add(float64(res.ExcludedOutliers))
	monitoring.ReportsServed.WithLabelValues("durations").Inc()

	return report, nil
}
