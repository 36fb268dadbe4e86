package report

import (
	"strings"
	"time"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// FilterByService returns the rows belonging to a single service
// instance.  An empty name matches every service held on the date.
func FilterByService(rows []model.AttendanceRecord, date, name string) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0)
	for _, r := range rows {
		if r.ServiceDate != date {
			continue
		}
		if name != "" && r.ServiceName != name {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterRange restricts rows to the inclusive [start, end] date range and,
// when service is non-empty, to a single service name.  Comparisons use
// parsed calendar dates, not string order; rows whose service date cannot
// be parsed are discarded from range-dependent views.  An empty bound
// leaves that side of the range open.
func FilterRange(rows []model.AttendanceRecord, start, end, service string) []model.AttendanceRecord {
	var startT, endT time.Time
	var hasStart, hasEnd bool
	if iso, ok := ledger.ParseDate(start); ok {
		startT, _ = ledger.DateValue(iso)
		hasStart = true
	}
	if iso, ok := ledger.ParseDate(end); ok {
		endT, _ = ledger.DateValue(iso)
		hasEnd = true
	}

	out := make([]model.AttendanceRecord, 0)
	for _, r := range rows {
		d, ok := ledger.DateValue(r.ServiceDate)
		if !ok {
			continue
		}
		if hasStart && d.Before(startT) {
			continue
		}
		if hasEnd && d.After(endT) {
			continue
		}
		if service != "" && r.ServiceName != service {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterLog applies the log-view filters: exact date match plus
// case-insensitive contains matches on service name and attendee.
func FilterLog(rows []model.AttendanceRecord, date, serviceContains, attendeeContains string) []model.AttendanceRecord {
	svcNeedle := strings.ToLower(strings.TrimSpace(serviceContains))
	nameNeedle := strings.ToLower(strings.TrimSpace(attendeeContains))
	out := make([]model.AttendanceRecord, 0)
	for _, r := range rows {
		if date != "" && r.ServiceDate != date {
			continue
		}
		if svcNeedle != "" && !strings.Contains(strings.ToLower(r.ServiceName), svcNeedle) {
			continue
		}
		if nameNeedle != "" && !strings.Contains(strings.ToLower(r.Attendee), nameNeedle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
