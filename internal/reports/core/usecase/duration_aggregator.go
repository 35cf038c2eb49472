package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
)

// AggregateDurations buckets samples by the chosen dimension and computes
// count, median, mean and max in seconds. Samples with an empty dimension
// value are left out; a dimension value with no samples gets no row, which is
// "no duration evidence", not a zero. Rows come back ordered by dimension
// value.
func AggregateDurations(samples []domain.DurationSample, groupBy string) []domain.DurationRow {
	groups := make(map[string][]float64)

	for _, s := range samples {
		dim := s.PaymentName
		if groupBy == domain.GroupByCountry {
			dim = s.CountryName
		}
		if dim == "" {
			continue
		}
		groups[dim] = append(groups[dim], float64(s.DurationMS)/1000.0)
	}

	rows := make([]domain.DurationRow, 0, len(groups))
	for dim, secs := range groups {
		// stats only errors on empty input; groups are never empty here.
		median, _ := stats.Median(secs)
		mean, _ := stats.Mean(secs)
		max, _ := stats.Max(secs)

		rows = append(rows, domain.DurationRow{
			DimensionValue: dim,
			Count:          int64(len(secs)),
			MedianSec:      median,
			MeanSec:        mean,
			MaxSec:         max,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].DimensionValue < rows[j].DimensionValue
	})

	return rows
}
