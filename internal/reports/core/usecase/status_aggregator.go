package usecase

import (
	"sort"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
)

// OverallStatusCounts tallies events by status and computes each status' share
// of the batch. An empty batch yields no rows. Rows come back ordered by
// count descending, status ascending on ties.
func OverallStatusCounts(events []domain.TransactionEvent) []domain.StatusCount {
	if len(events) == 0 {
		return nil
	}

	counts := make(map[string]int64)
	for _, e := range events {
		counts[e.Status]++
	}

	total := float64(len(events))
	out := make([]domain.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, domain.StatusCount{
			Status: status,
			Count:  n,
			Share:  float64(n) / total,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})

	return out
}

// StatusByDimension produces one row per distinct dimension value with the
// five well-known status columns zero-filled, a total, and both success-rate
// definitions. Events with an empty dimension value are left out (no bucket
// to put them in). Rows come back ordered by dimension value.
func StatusByDimension(events []domain.TransactionEvent, groupBy string) []domain.StatusBreakdownRow {
	rows := make(map[string]*domain.StatusBreakdownRow)

	for _, e := range events {
		dim := dimensionValue(e, groupBy)
		if dim == "" {
			continue
		}

		row, ok := rows[dim]
		if !ok {
			row = &domain.StatusBreakdownRow{DimensionValue: dim}
			rows[dim] = row
		}

		row.Total++
		switch e.Status {
		case domain.StatusAccepted:
			row.Accepted++
		case domain.StatusRejected:
			row.Rejected++
		case domain.StatusPending:
			row.Pending++
		case domain.StatusProcessing:
			row.Processing++
		case domain.StatusVerifyCode:
			row.VerifyCode++
		default:
			if row.Other == nil {
				row.Other = make(map[string]int64)
			}
			row.Other[e.Status]++
		}
	}

	out := make([]domain.StatusBreakdownRow, 0, len(rows))
	for _, row := range rows {
		if denom := row.Accepted + row.Rejected; denom > 0 {
			v := float64(row.Accepted) / float64(denom)
			row.SuccessRateStrict = &v
		}
		if row.Total > 0 {
			v := float64(row.Accepted+row.Pending) / float64(row.Total)
			row.SuccessRateCombined = &v
		}
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DimensionValue < out[j].DimensionValue
	})

	return out
}

func dimensionValue(e domain.TransactionEvent, groupBy string) string {
	if groupBy == domain.GroupByPayment {
		return e.PaymentName
	}
	return e.CountryName
}
