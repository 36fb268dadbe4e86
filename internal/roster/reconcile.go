package roster

import (
	"sort"
	"strings"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// ActiveNames returns the display names of active roster members, in
// roster order, de-duplicated under canonical matching.
func ActiveNames(members []model.Member) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(members))
	for _, m := range members {
		if !m.Active {
			continue
		}
		key := CanonicalName(m.Attendee)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m.Attendee)
	}
	return out
}

// PresentNames returns the attendee names checked in for a single
// service instance, taken from the attendance ledger.
func PresentNames(rows []model.AttendanceRecord, key model.ServiceKey) []string {
	out := make([]string, 0)
	for _, r := range rows {
		if r.ServiceDate != key.Date {
			continue
		}
		if key.Name != "" && r.ServiceName != key.Name {
			continue
		}
		out = append(out, r.Attendee)
	}
	return out
}

// ComputeAbsentees returns active roster names that do not appear in the
// present list: a pure set difference under canonical name matching.
// The result preserves roster order.  When every active member is
// present the result is empty (not nil).
func ComputeAbsentees(active, present []string) []string {
	presentSet := make(map[string]struct{}, len(present))
	for _, name := range present {
		presentSet[CanonicalName(name)] = struct{}{}
	}
	out := make([]string, 0)
	for _, name := range active {
		if _, ok := presentSet[CanonicalName(name)]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// RecordAbsenceNotes appends one absence row per non-blank note to the
// existing absence ledger, stamped with the current time and the service
// key.  Blank notes (and blank attendee names) are skipped silently.
// Rows are appended in attendee order so the result is deterministic;
// callers persist it.
func RecordAbsenceNotes(existing []model.AbsenceNote, key model.ServiceKey, noteByAttendee map[string]string) []model.AbsenceNote {
	attendees := make([]string, 0, len(noteByAttendee))
	for attendee := range noteByAttendee {
		attendees = append(attendees, attendee)
	}
	sort.Strings(attendees)

	out := make([]model.AbsenceNote, len(existing), len(existing)+len(attendees))
	copy(out, existing)
	for _, attendee := range attendees {
		note := strings.TrimSpace(noteByAttendee[attendee])
		if note == "" || CanonicalName(attendee) == "" {
			continue
		}
		out = append(out, ledger.NormalizeAbsence(model.AbsenceNote{
			Timestamp:   ledger.Now(),
			ServiceDate: key.Date,
			ServiceName: key.Name,
			Attendee:    attendee,
			Note:        note,
		}))
	}
	return out
}

// HasMember reports whether the roster already contains a member with
// the same canonical display name.
func HasMember(members []model.Member, name string) bool {
	key := CanonicalName(name)
	for _, m := range members {
		if CanonicalName(m.Attendee) == key {
			return true
		}
	}
	return false
}
