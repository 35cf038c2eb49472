package usecase

import (
	"testing"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
)

// ------------------------------------------------------------
// BASIC MATCH
// ------------------------------------------------------------

func TestCorrelateVerifications_SingleMatch(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "p1", "FR", domain.StatusAccepted, 3100),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(res.Samples))
	}

	s := res.Samples[0]
	if s.UserID != "u1" || s.PaymentName != "p1" {
		t.Fatalf("unexpected sample key: %+v", s)
	}
	if s.AcceptedAt != 3100 {
		t.Fatalf("expected accepted_at=3100, got %d", s.AcceptedAt)
	}
	if s.DurationMS != 3000 {
		t.Fatalf("expected duration 3000ms, got %d", s.DurationMS)
	}
	if s.CountryName != "FR" {
		t.Fatalf("expected country FR from the accepted event, got %q", s.CountryName)
	}
	if res.ExcludedOutliers != 0 {
		t.Fatalf("expected no outliers, got %d", res.ExcludedOutliers)
	}
}

// ------------------------------------------------------------
// LATEST VERIFICATION WINS
// ------------------------------------------------------------

func TestCorrelateVerifications_FreshCodeOverwrites(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 200),
		ev("u1", "p1", "FR", domain.StatusAccepted, 300),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 1 {
		t.Fatalf("expected exactly 1 sample, got %d", len(res.Samples))
	}
	// Measured from the second code, never the first.
	if res.Samples[0].DurationMS != 100 {
		t.Fatalf("expected duration 100ms from latest code, got %d", res.Samples[0].DurationMS)
	}
}

// ------------------------------------------------------------
// SINGLE USE: one verification satisfies at most one acceptance
// ------------------------------------------------------------

func TestCorrelateVerifications_VerificationConsumed(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "p1", "FR", domain.StatusAccepted, 200),
		ev("u1", "p1", "FR", domain.StatusAccepted, 300),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 1 {
		t.Fatalf("expected 1 sample, second acceptance has nothing pending, got %d", len(res.Samples))
	}
}

func TestCorrelateVerifications_ConsumedEvenWhenOutOfBound(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "p1", "FR", domain.StatusAccepted, 100+90_000_000),
		ev("u1", "p1", "FR", domain.StatusAccepted, 100+90_000_100),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 0 {
		t.Fatalf("expected no samples, stale code must not re-match, got %d", len(res.Samples))
	}
	if res.ExcludedOutliers != 1 {
		t.Fatalf("expected 1 excluded outlier, got %d", res.ExcludedOutliers)
	}
}

// ------------------------------------------------------------
// BOUNDS
// ------------------------------------------------------------

func TestCorrelateVerifications_Bounds(t *testing.T) {
	cases := []struct {
		name        string
		deltaMS     int64
		wantSamples int
		wantOutlier int64
	}{
		{"over one day", 90_000_000, 0, 1},
		{"negative", -5, 0, 1},
		{"zero", 0, 0, 1},
		{"valid", 3000, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := int64(1_000_000_000)
			events := []domain.TransactionEvent{
				ev("u1", "p1", "FR", domain.StatusVerifyCode, base),
				ev("u1", "p1", "FR", domain.StatusAccepted, base+tc.deltaMS),
			}

			res := CorrelateVerifications(events)
			if len(res.Samples) != tc.wantSamples {
				t.Fatalf("expected %d samples, got %d", tc.wantSamples, len(res.Samples))
			}
			if res.ExcludedOutliers != tc.wantOutlier {
				t.Fatalf("expected %d outliers, got %d", tc.wantOutlier, res.ExcludedOutliers)
			}
			if tc.wantSamples == 1 && res.Samples[0].DurationMS != tc.deltaMS {
				t.Fatalf("expected duration %dms, got %d", tc.deltaMS, res.Samples[0].DurationMS)
			}
		})
	}
}

// ------------------------------------------------------------
// UNMATCHED / IGNORED EVENTS
// ------------------------------------------------------------

func TestCorrelateVerifications_AcceptedWithoutCode(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusAccepted, 100),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 0 || res.ExcludedOutliers != 0 {
		t.Fatalf("expected nothing, got %+v", res)
	}
}

func TestCorrelateVerifications_OtherStatusesIgnored(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "p1", "FR", domain.StatusRejected, 200),
		ev("u1", "p1", "FR", domain.StatusProcessing, 300),
		ev("u1", "p1", "FR", domain.StatusAccepted, 400),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 1 {
		t.Fatalf("expected 1 sample, intermediate statuses must not consume the code, got %d", len(res.Samples))
	}
	if res.Samples[0].DurationMS != 300 {
		t.Fatalf("expected duration 300ms, got %d", res.Samples[0].DurationMS)
	}
}

// ------------------------------------------------------------
// KEY ISOLATION AND INPUT ORDER
// ------------------------------------------------------------

func TestCorrelateVerifications_KeysAreIndependent(t *testing.T) {
	events := []domain.TransactionEvent{
		ev("u1", "card", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "wire", "FR", domain.StatusVerifyCode, 150),
		ev("u2", "card", "DE", domain.StatusVerifyCode, 120),
		ev("u1", "card", "FR", domain.StatusAccepted, 500),
		ev("u2", "card", "DE", domain.StatusAccepted, 620),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(res.Samples))
	}
	// The u1/wire code stays unmatched; silently dropped.
}

func TestCorrelateVerifications_UnsortedInput(t *testing.T) {
	// Input arrives unordered; the correlator sorts before the pass.
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusAccepted, 3100),
		ev("u2", "p1", "DE", domain.StatusVerifyCode, 50),
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u2", "p1", "DE", domain.StatusAccepted, 1050),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(res.Samples))
	}
}

// ------------------------------------------------------------
// COUNTRY JOIN
// ------------------------------------------------------------

func TestCorrelateVerifications_CountryJoinFirstMatchWins(t *testing.T) {
	// Two accepted events collide on (user, payment, created_at); the first
	// one in input order decides the country.
	events := []domain.TransactionEvent{
		ev("u1", "p1", "FR", domain.StatusVerifyCode, 100),
		ev("u1", "p1", "FR", domain.StatusAccepted, 200),
		ev("u1", "p1", "DE", domain.StatusAccepted, 200),
	}

	res := CorrelateVerifications(events)
	if len(res.Samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(res.Samples))
	}
	if res.Samples[0].CountryName != "FR" {
		t.Fatalf("expected first-match country FR, got %q", res.Samples[0].CountryName)
	}
}
