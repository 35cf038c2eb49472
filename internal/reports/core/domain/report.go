package domain

// Grouping dimensions.
const (
	GroupByCountry = "country_name"
	GroupByPayment = "payment_name"
)

// Success-rate definitions. Both are always computed; rate_mode only selects
// which one the caller surfaces.
const (
	RateModeStrict   = "strict"
	RateModeCombined = "combined"
)

type StatusCount struct {
	Status string
	Count  int64
	Share  float64
}

// StatusBreakdownRow is one dimension value's status distribution. The five
// well-known statuses always have columns, zero-filled when unobserved; any
// other observed status lands in Other. A nil rate means the denominator was
// zero ("no data", not 0).
type StatusBreakdownRow struct {
	DimensionValue string
	Accepted       int64
	Rejected       int64
	Pending        int64
	Processing     int64
	VerifyCode     int64
	Other          map[string]int64
	Total          int64

	SuccessRateStrict   *float64 // accepted / (accepted + rejected)
	SuccessRateCombined *float64 // (accepted + pending) / total
}

// DurationSample is one matched verify-code -> accepted pair. CountryName is
// joined from the accepted event; empty when the join misses.
type DurationSample struct {
	UserID      string
	PaymentName string
	AcceptedAt  int64
	DurationMS  int64
	CountryName string
}

// DurationRow carries descriptive duration statistics in seconds for one
// dimension value. Dimension values with no samples get no row at all.
type DurationRow struct {
	DimensionValue string
	Count          int64
	MedianSec      float64
	MeanSec        float64
	MaxSec         float64
}

type StatusReport struct {
	Dataset       string
	GroupBy       string
	Overall       []StatusCount
	ByDimension   []StatusBreakdownRow
	MissingFields []string
}

type DurationReport struct {
	Dataset          string
	GroupBy          string
	Rows             []DurationRow
	ExcludedOutliers int64
	MissingFields    []string
}
