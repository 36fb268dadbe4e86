package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
	"github.com/parishtools/attendance-register/internal/queue"
	"github.com/parishtools/attendance-register/internal/repository"
	"github.com/parishtools/attendance-register/internal/roster"
	queue_publisher "github.com/parishtools/attendance-register/internal/service"
)

// RosterHandler serves the member roster, member check-in and absentee
// reconciliation.  Only active members are offered for check-in and
// counted as potential absentees.
type RosterHandler struct {
	Store repository.Store
}

func NewRosterHandler(store repository.Store) *RosterHandler {
	if store == nil {
		panic("nil store passed to NewRosterHandler")
	}
	return &RosterHandler{Store: store}
}

// ListMembers handles GET /v1/members?active=true|false (no param
// returns everyone).
func (h *RosterHandler) ListMembers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	members, err := h.Store.LoadMembers(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load roster failed: " + err.Error()})
	}
	if q := strings.TrimSpace(c.QueryParam("active")); q != "" {
		want := q != "false" && q != "0"
		filtered := make([]model.Member, 0, len(members))
		for _, m := range members {
			if m.Active == want {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}
	return c.JSON(http.StatusOK, members)
}

type memberReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Notes     string `json:"notes"`
	Active    any    `json:"active"`
}

// CreateMember handles POST /v1/members.  The display name is derived
// from the name parts; a member with the same canonical name is
// rejected with 409.
func (h *RosterHandler) CreateMember(c echo.Context) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := model.DisplayName(req.FirstName, req.LastName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name or last_name is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	members, err := h.Store.LoadMembers(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load roster failed: " + err.Error()})
	}
	if roster.HasMember(members, name) {
		return c.JSON(http.StatusConflict, echo.Map{"error": repository.ErrDuplicateMember.Error()})
	}

	m := ledger.NormalizeMember(model.Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Notes:     req.Notes,
		Active:    activeFrom(req.Active),
	})
	members = append(members, m)
	if err := h.Store.SaveMembers(ctx, members); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save roster failed: " + err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateMember handles PUT /v1/members/:id.
func (h *RosterHandler) UpdateMember(c echo.Context) error {
	id := c.Param("id")
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	members, err := h.Store.LoadMembers(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load roster failed: " + err.Error()})
	}
	pos, found := ledger.MemberIndexByID(members, id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": repository.ErrNotFound.Error()})
	}

	m := members[pos]
	if strings.TrimSpace(req.FirstName) != "" {
		m.FirstName = req.FirstName
	}
	if strings.TrimSpace(req.LastName) != "" {
		m.LastName = req.LastName
	}
	m.Notes = req.Notes
	if req.Active != nil {
		m.Active = activeFrom(req.Active)
	}
	m.Attendee = model.DisplayName(m.FirstName, m.LastName)

	// A rename must not collide with another member.
	for i, other := range members {
		if i != pos && roster.SameName(other.Attendee, m.Attendee) {
			return c.JSON(http.StatusConflict, echo.Map{"error": repository.ErrDuplicateMember.Error()})
		}
	}

	members[pos] = ledger.NormalizeMember(m)
	if err := h.Store.SaveMembers(ctx, members); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save roster failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, members[pos])
}

// DeleteMember handles DELETE /v1/members/:id.
func (h *RosterHandler) DeleteMember(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()
	members, err := h.Store.LoadMembers(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load roster failed: " + err.Error()})
	}
	pos, found := ledger.MemberIndexByID(members, id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": repository.ErrNotFound.Error()})
	}
	members = ledger.DeleteMemberAt(members, pos)
	if err := h.Store.SaveMembers(ctx, members); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save roster failed: " + err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

type checkinReq struct {
	MemberID    string `json:"member_id"`
	ServiceDate string `json:"service_date"`
	ServiceName string `json:"service_name"`
	Household   any    `json:"household"`
	Notes       string `json:"notes"`
}

// CheckIn handles POST /v1/checkin: creates an attendance record for a
// roster member.  Inactive members cannot be checked in.
func (h *RosterHandler) CheckIn(c echo.Context) error {
	var req checkinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	svcName := strings.TrimSpace(req.ServiceName)
	svcDate, ok := ledger.ParseDate(req.ServiceDate)
	if svcName == "" || !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_date and service_name are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	members, err := h.Store.LoadMembers(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load roster failed: " + err.Error()})
	}
	pos, found := ledger.MemberIndexByID(members, req.MemberID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": repository.ErrNotFound.Error()})
	}
	member := members[pos]
	if !member.Active {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "member is not active"})
	}

	rows, err := h.Store.LoadAttendance(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load ledger failed: " + err.Error()})
	}
	// One check-in per member per service; repeated clicks are idempotent
	// errors, not duplicate rows.
	for _, r := range rows {
		if r.ServiceDate == svcDate && r.ServiceName == svcName && roster.SameName(r.Attendee, member.Attendee) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "member already checked in for this service"})
		}
	}

	rec := ledger.NormalizeAttendance(model.AttendanceRecord{
		Timestamp:   ledger.Now(),
		ServiceDate: svcDate,
		ServiceName: svcName,
		Attendee:    member.Attendee,
		Household:   householdFrom(req.Household),
		Notes:       req.Notes,
	})
	rows = ledger.Append(rows, rec)
	if err := h.Store.SaveAttendance(ctx, rows); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save ledger failed: " + err.Error()})
	}

	_ = queue_publisher.PublishAttendanceRecorded(ctx, queue.AttendanceRecordedEvent{
		RecordID:    rec.ID,
		ServiceDate: rec.ServiceDate,
		ServiceName: rec.ServiceName,
		Attendee:    rec.Attendee,
		Household:   rec.Household,
		Source:      "checkin",
		RecordedAt:  rec.Timestamp,
	})

	return c.JSON(http.StatusCreated, rec)
}

type absenteesResp struct {
	ServiceDate string   `json:"service_date"`
	ServiceName string   `json:"service_name"`
	Absentees   []string `json:"absentees"`
}

// Absentees handles GET /v1/absentees?date=&service=: active roster
// minus the service's check-in list.
func (h *RosterHandler) Absentees(c echo.Context) error {
	svcDate, ok := ledger.ParseDate(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	}
	svcName := strings.TrimSpace(c.QueryParam("service"))

	ctx, cancel := reqCtx(c)
	defer cancel()
	members, err := h.Store.LoadMembers(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load roster failed: " + err.Error()})
	}
	rows := loadAttendanceOrEmpty(ctx, h.Store)

	key := model.ServiceKey{Date: svcDate, Name: svcName}
	absent := roster.ComputeAbsentees(roster.ActiveNames(members), roster.PresentNames(rows, key))
	return c.JSON(http.StatusOK, absenteesResp{ServiceDate: svcDate, ServiceName: svcName, Absentees: absent})
}

// ListAbsences handles GET /v1/absences?date=&service=
func (h *RosterHandler) ListAbsences(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	notes, err := h.Store.LoadAbsences(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load absences failed: " + err.Error()})
	}

	date := strings.TrimSpace(c.QueryParam("date"))
	if iso, ok := ledger.ParseDate(date); ok {
		date = iso
	}
	service := strings.TrimSpace(c.QueryParam("service"))
	if date == "" && service == "" {
		return c.JSON(http.StatusOK, notes)
	}
	out := make([]model.AbsenceNote, 0, len(notes))
	for _, n := range notes {
		if date != "" && n.ServiceDate != date {
			continue
		}
		if service != "" && n.ServiceName != service {
			continue
		}
		out = append(out, n)
	}
	return c.JSON(http.StatusOK, out)
}

type absenceNotesReq struct {
	ServiceDate string            `json:"service_date"`
	ServiceName string            `json:"service_name"`
	Notes       map[string]string `json:"notes"` // attendee -> reason
}

// RecordAbsences handles POST /v1/absences: merges the submitted notes
// into the absence ledger.  Blank notes are skipped silently, matching
// the register's form semantics.
func (h *RosterHandler) RecordAbsences(c echo.Context) error {
	var req absenceNotesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	svcName := strings.TrimSpace(req.ServiceName)
	svcDate, ok := ledger.ParseDate(req.ServiceDate)
	if svcName == "" || !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_date and service_name are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	existing, err := h.Store.LoadAbsences(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "load absences failed: " + err.Error()})
	}

	key := model.ServiceKey{Date: svcDate, Name: svcName}
	merged := roster.RecordAbsenceNotes(existing, key, req.Notes)
	if err := h.Store.SaveAbsences(ctx, merged); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save absences failed: " + err.Error()})
	}

	added := merged[len(existing):]
	for _, n := range added {
		_ = queue_publisher.PublishAbsenceRecorded(ctx, queue.AbsenceRecordedEvent{
			RecordID:    n.ID,
			ServiceDate: n.ServiceDate,
			ServiceName: n.ServiceName,
			Attendee:    n.Attendee,
			Note:        n.Note,
			RecordedAt:  n.Timestamp,
		})
	}
	return c.JSON(http.StatusCreated, added)
}
