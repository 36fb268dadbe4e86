package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
	"github.com/parishtools/attendance-register/internal/report"
	"github.com/parishtools/attendance-register/internal/repository"
)

// ReportHandler serves the dashboard views: summary cards, per-service
// totals, the daily series with rolling mean, the service mix and the
// top-attendee ranking.  Every endpoint recomputes from a fresh ledger
// load; the store-level cache keeps that cheap.
type ReportHandler struct {
	Store repository.Store
}

func NewReportHandler(store repository.Store) *ReportHandler {
	if store == nil {
		panic("nil store passed to NewReportHandler")
	}
	return &ReportHandler{Store: store}
}

type summaryResp struct {
	ServiceDate    string `json:"service_date"`
	ServiceName    string `json:"service_name"`
	Entries        int    `json:"entries"`
	People         int    `json:"people"`
	AllTimeRecords int    `json:"all_time_records"`
}

// Summary handles GET /v1/reports/summary?date=&service= and returns
// the selected-service cards plus the all-time record count.
func (h *ReportHandler) Summary(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)

	date := strings.TrimSpace(c.QueryParam("date"))
	if iso, ok := ledger.ParseDate(date); ok {
		date = iso
	}
	service := strings.TrimSpace(c.QueryParam("service"))

	var selected []model.AttendanceRecord
	if date != "" {
		selected = report.FilterByService(rows, date, service)
	}
	people := 0
	for _, r := range selected {
		people += r.Household
	}
	return c.JSON(http.StatusOK, summaryResp{
		ServiceDate:    date,
		ServiceName:    service,
		Entries:        len(selected),
		People:         people,
		AllTimeRecords: len(rows),
	})
}

// Services handles GET /v1/reports/services: totals per service, all time.
func (h *ReportHandler) Services(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)
	return c.JSON(http.StatusOK, report.TotalsPerService(rows))
}

// Daily handles GET /v1/reports/daily?start=&end=&service=&window=
func (h *ReportHandler) Daily(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)

	window := report.MinWindow
	if w := strings.TrimSpace(c.QueryParam("window")); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			window = n
		}
	}
	out := report.DailySeries(rows, c.QueryParam("start"), c.QueryParam("end"), strings.TrimSpace(c.QueryParam("service")), window)
	return c.JSON(http.StatusOK, out)
}

// Mix handles GET /v1/reports/mix?start=&end=&service=
func (h *ReportHandler) Mix(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)
	out := report.ServiceMix(rows, c.QueryParam("start"), c.QueryParam("end"), strings.TrimSpace(c.QueryParam("service")))
	return c.JSON(http.StatusOK, out)
}

// Top handles GET /v1/reports/top?start=&end=&service=&limit=
func (h *ReportHandler) Top(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)

	limit := 0
	if l := strings.TrimSpace(c.QueryParam("limit")); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			limit = n
		}
	}
	out := report.TopAttendees(rows, c.QueryParam("start"), c.QueryParam("end"), strings.TrimSpace(c.QueryParam("service")), limit)
	return c.JSON(http.StatusOK, out)
}

// KPIs handles GET /v1/reports/kpis?start=&end=&service=
func (h *ReportHandler) KPIs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)
	out := report.KPIs(rows, c.QueryParam("start"), c.QueryParam("end"), strings.TrimSpace(c.QueryParam("service")))
	return c.JSON(http.StatusOK, out)
}
