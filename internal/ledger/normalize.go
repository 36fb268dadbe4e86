// Package ledger holds the pure table semantics of the register: row
// normalization on every load and save, and positional append/edit/delete
// primitives.  Nothing in this package touches a backing store.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parishtools/attendance-register/internal/model"
)

// TimestampLayout is the wall-clock layout used for row creation stamps.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the canonical ISO representation of a service date.
const DateLayout = "2006-01-02"

// AsInt parses a positive integer out of free-form input.  Anything that
// is not a positive integer (garbage, zero, negatives) falls back to def.
func AsInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// ClampPositive coerces an already-numeric count to the >= 1 invariant.
func ClampPositive(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// ParseDate parses a service date in any of the accepted input shapes and
// returns its canonical ISO form.  The second return value reports whether
// the input was parseable at all.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range []string{DateLayout, time.RFC3339, TimestampLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

// DateValue returns the time value of a canonical service date for range
// comparisons.  Malformed dates report ok=false and are excluded from
// date-dependent views by callers.
func DateValue(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeAttendance applies the canonical column rules to a single
// attendance row: trimmed text fields, household clamped to >= 1, service
// date coerced to ISO form when parseable, and a generated ID when the row
// does not carry one yet.  Unparsable dates are kept verbatim so the row
// still shows up in all-time totals.
func NormalizeAttendance(r model.AttendanceRecord) model.AttendanceRecord {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.ServiceName = strings.TrimSpace(r.ServiceName)
	r.Attendee = strings.TrimSpace(r.Attendee)
	r.Household = ClampPositive(r.Household, 1)
	if iso, ok := ParseDate(r.ServiceDate); ok {
		r.ServiceDate = iso
	} else {
		r.ServiceDate = strings.TrimSpace(r.ServiceDate)
	}
	return r
}

// NormalizeAttendanceAll normalizes every row of an attendance ledger.
func NormalizeAttendanceAll(rows []model.AttendanceRecord) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, len(rows))
	for i, r := range rows {
		out[i] = NormalizeAttendance(r)
	}
	return out
}

// NormalizeMember applies the roster column rules: trimmed name parts and
// the derived Attendee display name.  An empty Attendee is rebuilt from the
// name parts so the join key is always present.
func NormalizeMember(m model.Member) model.Member {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Attendee = strings.TrimSpace(m.Attendee)
	if m.Attendee == "" {
		m.Attendee = model.DisplayName(m.FirstName, m.LastName)
	}
	return m
}

// NormalizeMemberAll normalizes every roster row.
func NormalizeMemberAll(rows []model.Member) []model.Member {
	out := make([]model.Member, len(rows))
	for i, m := range rows {
		out[i] = NormalizeMember(m)
	}
	return out
}

// NormalizeAbsence applies the absence ledger rules.
func NormalizeAbsence(a model.AbsenceNote) model.AbsenceNote {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.ServiceName = strings.TrimSpace(a.ServiceName)
	a.Attendee = strings.TrimSpace(a.Attendee)
	if iso, ok := ParseDate(a.ServiceDate); ok {
		a.ServiceDate = iso
	} else {
		a.ServiceDate = strings.TrimSpace(a.ServiceDate)
	}
	return a
}

// NormalizeAbsenceAll normalizes every absence row.
func NormalizeAbsenceAll(rows []model.AbsenceNote) []model.AbsenceNote {
	out := make([]model.AbsenceNote, len(rows))
	for i, a := range rows {
		out[i] = NormalizeAbsence(a)
	}
	return out
}

// Now returns the current wall-clock creation stamp.
func Now() string {
	return time.Now().Format(TimestampLayout)
}
