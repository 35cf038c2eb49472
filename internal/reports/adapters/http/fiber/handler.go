package fiber

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/domain"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/ports"
	"github.com/marcelinaiux/transaction-dashboard/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StatusReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetStatusReportInput) (*domain.StatusReport, error)
}

type DurationReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetDurationReportInput) (*domain.DurationReport, error)
}

// ReportDefaults are the fallback query options, typically refreshed from the
// hot-reloaded config file.
type ReportDefaults struct {
	GroupBy       string
	RateMode      string
	MinSampleSize int
	TopN          int
}

type ReportsHandler struct {
	statusUC   StatusReportUseCase
	durationUC DurationReportUseCase
	defaults   func() ReportDefaults
}

func NewReportsHandler(statusUC StatusReportUseCase, durationUC DurationReportUseCase, defaults func() ReportDefaults) *ReportsHandler {
	return &ReportsHandler{
		statusUC:   statusUC,
		durationUC: durationUC,
		defaults:   defaults,
	}
}

// GetStatusReport godoc
// @Summary Status distribution and success rates
// @Description Overall status counts plus a per-dimension breakdown with both success-rate definitions
// @Tags Reports
// @Accept json
// @Produce json
// @Param dataset query string true "Dataset name: deposit | withdraw"
// @Param group_by query string false "Dimension: country_name | payment_name"
// @Param rate_mode query string false "Rate used for ordering: strict | combined"
// @Success 200 {object} StatusReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/status [get]
func (h *ReportsHandler) GetStatusReport(c *fiber.Ctx) error {
	d := h.defaults()

	rateMode := c.Query("rate_mode", d.RateMode)
	if rateMode != domain.RateModeStrict && rateMode != domain.RateModeCombined {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_rate_mode",
			Message: "rate_mode must be strict or combined",
		})
	}

	in := usecase.GetStatusReportInput{
		Dataset: c.Query("dataset", ""),
		GroupBy: c.Query("group_by", d.GroupBy),
	}

	res, err := h.statusUC.Execute(c.UserContext(), in)
	if err != nil {
		return reportError(c, err)
	}

	resp := StatusReportResponse{
		Dataset:       res.Dataset,
		GroupBy:       res.GroupBy,
		RateMode:      rateMode,
		Overall:       make([]StatusCountResponse, 0, len(res.Overall)),
		ByDimension:   make([]StatusBreakdownRowResponse, 0, len(res.ByDimension)),
		MissingFields: res.MissingFields,
	}

	for _, s := range res.Overall {
		resp.Overall = append(resp.Overall, StatusCountResponse{
			Status: s.Status,
			Count:  s.Count,
			Share:  s.Share,
		})
	}

	for _, row := range res.ByDimension {
		resp.ByDimension = append(resp.ByDimension, StatusBreakdownRowResponse{
			DimensionValue:      row.DimensionValue,
			Accepted:            row.Accepted,
			Rejected:            row.Rejected,
			Pending:             row.Pending,
			Processing:          row.Processing,
			VerifyCode:          row.VerifyCode,
			Other:               row.Other,
			Total:               row.Total,
			SuccessRateStrict:   row.SuccessRateStrict,
			SuccessRateCombined: row.SuccessRateCombined,
		})
	}

	// Dashboard order: worst rate first, rows with no rate data at the end.
	sortBreakdownRows(resp.ByDimension, rateMode)

	return c.Status(http.StatusOK).JSON(resp)
}

// GetDurationReport godoc
// @Summary Verify-to-accept duration statistics
// @Description Median/mean/max duration in seconds between a verification code and the matching acceptance, per dimension
// @Tags Reports
// @Accept json
// @Produce json
// @Param dataset query string true "Dataset name: deposit | withdraw"
// @Param group_by query string false "Dimension: country_name | payment_name"
// @Param min_sample_size query int false "Hide groups with fewer samples (default from config)"
// @Param top_n query int false "Keep only the first N rows, 0 = all"
// @Success 200 {object} DurationReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/durations [get]
func (h *ReportsHandler) GetDurationReport(c *fiber.Ctx) error {
	d := h.defaults()

	minSamples, err := queryInt(c, "min_sample_size", d.MinSampleSize)
	if err != nil || minSamples < 1 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_min_sample_size",
			Message: "min_sample_size must be an integer >= 1",
		})
	}

	topN, err := queryInt(c, "top_n", d.TopN)
	if err != nil || topN < 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_top_n",
			Message: "top_n must be an integer >= 0",
		})
	}

	in := usecase.GetDurationReportInput{
		Dataset: c.Query("dataset", ""),
		GroupBy: c.Query("group_by", d.GroupBy),
	}

	res, err := h.durationUC.Execute(c.UserContext(), in)
	if err != nil {
		return reportError(c, err)
	}

	rows := make([]DurationRowResponse, 0, len(res.Rows))
	for _, row := range res.Rows {
		if row.Count < int64(minSamples) {
			continue
		}
		rows = append(rows, DurationRowResponse{
			DimensionValue: row.DimensionValue,
			Count:          row.Count,
			Median:         row.MedianSec,
			Mean:           row.MeanSec,
			Max:            row.MaxSec,
		})
	}

	// Dashboard order: slowest median first.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Median > rows[j].Median
	})

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}

	return c.Status(http.StatusOK).JSON(DurationReportResponse{
		Dataset:          res.Dataset,
		GroupBy:          res.GroupBy,
		Rows:             rows,
		ExcludedOutliers: res.ExcludedOutliers,
		MissingFields:    res.MissingFields,
	})
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDataset),
		errors.Is(err, usecase.ErrInvalidGroupBy):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrUnknownDataset):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_dataset",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func queryInt(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func sortBreakdownRows(rows []StatusBreakdownRowResponse, rateMode string) {
	rate := func(r StatusBreakdownRowResponse) *float64 {
		if rateMode == domain.RateModeCombined {
			return r.SuccessRateCombined
		}
		return r.SuccessRateStrict
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rate(rows[i]), rate(rows[j])
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri < *rj
	})
}
