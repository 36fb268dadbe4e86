package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
	"github.com/parishtools/attendance-register/internal/queue"
	"github.com/parishtools/attendance-register/internal/report"
	"github.com/parishtools/attendance-register/internal/repository"
	queue_publisher "github.com/parishtools/attendance-register/internal/service"
)

// AttendanceHandler serves the attendance ledger: the filtered log view
// plus add/edit/delete.  Mutations address records by their stable ID,
// never by row position.
type AttendanceHandler struct {
	Store repository.Store
}

func NewAttendanceHandler(store repository.Store) *AttendanceHandler {
	if store == nil {
		panic("nil store passed to NewAttendanceHandler")
	}
	return &AttendanceHandler{Store: store}
}

// List handles GET /v1/attendance?date=&service=&attendee=
// date is an exact match; service and attendee are case-insensitive
// contains filters, as in the log view of the register.
func (h *AttendanceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)

	date := strings.TrimSpace(c.QueryParam("date"))
	if date != "" {
		if iso, ok := ledger.ParseDate(date); ok {
			date = iso
		}
	}
	out := report.FilterLog(rows, date, c.QueryParam("service"), c.QueryParam("attendee"))
	return c.JSON(http.StatusOK, out)
}

type attendanceReq struct {
	ServiceDate string `json:"service_date"`
	ServiceName string `json:"service_name"`
	Attendee    string `json:"attendee"`
	Household   any    `json:"household"`
	Notes       string `json:"notes"`
}

// Create handles POST /v1/attendance.  Attendee name and the service
// key are required; household is coerced to a positive integer.
func (h *AttendanceHandler) Create(c echo.Context) error {
	var req attendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	attendee := strings.TrimSpace(req.Attendee)
	if attendee == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "attendee name is required"})
	}
	svcName := strings.TrimSpace(req.ServiceName)
	svcDate, ok := ledger.ParseDate(req.ServiceDate)
	if svcName == "" || !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_date and service_name are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.Store.LoadAttendance(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load ledger failed: " + err.Error()})
	}

	rec := ledger.NormalizeAttendance(model.AttendanceRecord{
		Timestamp:   ledger.Now(),
		ServiceDate: svcDate,
		ServiceName: svcName,
		Attendee:    attendee,
		Household:   householdFrom(req.Household),
		Notes:       req.Notes,
	})
	rows = ledger.Append(rows, rec)
	if err := h.Store.SaveAttendance(ctx, rows); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save ledger failed: " + err.Error()})
	}

	// Best-effort audit event; a broker outage never fails the request.
	_ = queue_publisher.PublishAttendanceRecorded(ctx, queue.AttendanceRecordedEvent{
		RecordID:    rec.ID,
		ServiceDate: rec.ServiceDate,
		ServiceName: rec.ServiceName,
		Attendee:    rec.Attendee,
		Household:   rec.Household,
		Source:      "manual",
		RecordedAt:  rec.Timestamp,
	})

	return c.JSON(http.StatusCreated, rec)
}

type attendanceEditReq struct {
	Attendee  *string `json:"attendee"`
	Household any     `json:"household"`
	Notes     *string `json:"notes"`
}

// Update handles PUT /v1/attendance/:id.  Only the editable fields of
// the original register (attendee, household, notes) can change; the
// service key and creation stamp are immutable.
func (h *AttendanceHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var req attendanceEditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.Store.LoadAttendance(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load ledger failed: " + err.Error()})
	}
	pos, found := ledger.IndexByID(rows, id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": repository.ErrNotFound.Error()})
	}

	rec := rows[pos]
	if req.Attendee != nil {
		name := strings.TrimSpace(*req.Attendee)
		if name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "attendee name is required"})
		}
		rec.Attendee = name
	}
	if req.Household != nil {
		rec.Household = householdFrom(req.Household)
	}
	if req.Notes != nil {
		rec.Notes = *req.Notes
	}

	rows = ledger.ReplaceAt(rows, pos, rec)
	if err := h.Store.SaveAttendance(ctx, rows); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save ledger failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, rows[pos])
}

// Delete handles DELETE /v1/attendance/:id.
func (h *AttendanceHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.Store.LoadAttendance(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load ledger failed: " + err.Error()})
	}
	pos, found := ledger.IndexByID(rows, id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": repository.ErrNotFound.Error()})
	}

	rows = ledger.DeleteAt(rows, pos)
	if err := h.Store.SaveAttendance(ctx, rows); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save ledger failed: " + err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
