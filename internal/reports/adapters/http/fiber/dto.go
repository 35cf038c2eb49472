package fiber

type StatusCountResponse struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Share  float64 `json:"share"`
}

// StatusBreakdownRowResponse always carries the five well-known status
// columns, zero-filled when unobserved. A null rate means "no data".
type StatusBreakdownRowResponse struct {
	DimensionValue string           `json:"dimension_value"`
	Accepted       int64            `json:"accepted"`
	Rejected       int64            `json:"rejected"`
	Pending        int64            `json:"pending"`
	Processing     int64            `json:"processing"`
	VerifyCode     int64            `json:"is_verify_code"`
	Other          map[string]int64 `json:"other,omitempty"`
	Total          int64            `json:"total"`

	SuccessRateStrict   *float64 `json:"success_rate_strict"`
	SuccessRateCombined *float64 `json:"success_rate_combined"`
}

type StatusReportResponse struct {
	Dataset       string                       `json:"dataset"`
	GroupBy       string                       `json:"group_by"`
	RateMode      string                       `json:"rate_mode"`
	Overall       []StatusCountResponse        `json:"overall"`
	ByDimension   []StatusBreakdownRowResponse `json:"by_dimension"`
	MissingFields []string                     `json:"missing_fields,omitempty"`
}

type DurationRowResponse struct {
	DimensionValue string  `json:"dimension_value"`
	Count          int64   `json:"count"`
	Median         float64 `json:"median"`
	Mean           float64 `json:"mean"`
	Max            float64 `json:"max"`
}

type DurationReportResponse struct {
	Dataset          string                `json:"dataset"`
	GroupBy          string                `json:"group_by"`
	Rows             []DurationRowResponse `json:"rows"`
	ExcludedOutliers int64                 `json:"excluded_outliers"`
	MissingFields    []string              `json:"missing_fields,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_group_by"`
	Message string `json:"message" example:"group_by must be country_name or payment_name"`
}
