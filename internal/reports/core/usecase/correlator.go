package usecase

import (
	"sort"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
)

// A verify/accept gap at or above one day is a stale pairing, not a slow
// transaction.
const maxVerifyToAcceptMS = int64(24 * 3600 * 1000)

type correlationKey struct {
	userID      string
	paymentName string
}

// CorrelationResult carries the matched samples and how many candidate pairs
// fell outside the plausibility bound.
type CorrelationResult struct {
	Samples          []domain.DurationSample
	ExcludedOutliers int64
}

// CorrelateVerifications pairs each is_verify_code event with the next
// accepted event for the same (user_id, payment_name) and measures the gap in
// ms. At most one verification is outstanding per key: a fresh code replaces
// the previous one, and an acceptance consumes it whether or not the gap
// passes the (0, 24h) bound. Acceptances with nothing outstanding are skipped.
//
// The pass runs over a stable-sorted copy; ties on created_at within a key
// keep input order. Samples are annotated with the accepting event's country.
func CorrelateVerifications(events []domain.TransactionEvent) CorrelationResult {
	sorted := make([]domain.TransactionEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.PaymentName != b.PaymentName {
			return a.PaymentName < b.PaymentName
		}
		return a.CreatedAt < b.CreatedAt
	})

	var res CorrelationResult
	pending := make(map[correlationKey]int64)

	for _, e := range sorted {
		key := correlationKey{userID: e.UserID, paymentName: e.PaymentName}

		switch e.Status {
		case domain.StatusVerifyCode:
			// Only the latest code counts.
			pending[key] = e.CreatedAt

		case domain.StatusAccepted:
			sentAt, ok := pending[key]
			if !ok {
				continue
			}
			// One verification satisfies at most one acceptance.
			delete(pending, key)

			d := e.CreatedAt - sentAt
			if d <= 0 || d >= maxVerifyToAcceptMS {
				res.ExcludedOutliers++
				continue
			}

			res.Samples = append(res.Samples, domain.DurationSample{
				UserID:      e.UserID,
				PaymentName: e.PaymentName,
				AcceptedAt:  e.CreatedAt,
				DurationMS:  d,
			})
		}
	}

	joinAcceptedCountry(events, res.Samples)

	return res
}

// joinAcceptedCountry fills in each sample's country from the accepted event
// matching on (user_id, payment_name, created_at). When several accepted
// events collide on that key, the first one in input order wins.
func joinAcceptedCountry(events []domain.TransactionEvent, samples []domain.DurationSample) {
	type joinKey struct {
		userID      string
		paymentName string
		acceptedAt  int64
	}

	countries := make(map[joinKey]string)
	for _, e := range events {
		if e.Status != domain.StatusAccepted {
			continue
		}
		k := joinKey{userID: e.UserID, paymentName: e.PaymentName, acceptedAt: e.CreatedAt}
		if _, ok := countries[k]; !ok {
			countries[k] = e.CountryName
		}
	}

	for i, s := range samples {
		samples[i].CountryName = countries[joinKey{
			userID:      s.UserID,
			paymentName: s.PaymentName,
			acceptedAt:  s.AcceptedAt,
		}]
	}
}
