package ledger

import "github.com/parishtools/attendance-register/internal/model"

// Positional primitives over the in-memory ledgers.  Rows are addressed by
// their ordinal position in the current table; DeleteAt re-indexes the
// remainder contiguously from zero.  The HTTP layer never exposes
// positions directly: it resolves a record's stable ID to a position
// first, which keeps concurrent editors from deleting the wrong row.

// Append returns a new table with the normalized record appended.  The
// caller is responsible for persisting the result.
func Append(rows []model.AttendanceRecord, r model.AttendanceRecord) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, len(rows), len(rows)+1)
	copy(out, rows)
	return append(out, NormalizeAttendance(r))
}

// ReplaceAt returns a new table with the row at pos replaced.  Out-of-range
// positions return the input unchanged.
func ReplaceAt(rows []model.AttendanceRecord, pos int, r model.AttendanceRecord) []model.AttendanceRecord {
	if pos < 0 || pos >= len(rows) {
		return rows
	}
	out := make([]model.AttendanceRecord, len(rows))
	copy(out, rows)
	r.ID = rows[pos].ID // identity survives edits
	out[pos] = NormalizeAttendance(r)
	return out
}

// DeleteAt returns a new table without the row at pos, remaining rows in
// their original relative order.  Out-of-range positions return the input
// unchanged.
func DeleteAt(rows []model.AttendanceRecord, pos int) []model.AttendanceRecord {
	if pos < 0 || pos >= len(rows) {
		return rows
	}
	out := make([]model.AttendanceRecord, 0, len(rows)-1)
	out = append(out, rows[:pos]...)
	out = append(out, rows[pos+1:]...)
	return out
}

// IndexByID resolves a record's stable ID to its current ordinal position.
func IndexByID(rows []model.AttendanceRecord, id string) (int, bool) {
	for i, r := range rows {
		if r.ID == id {
			return i, true
		}
	}
	return 0, false
}

// MemberIndexByID resolves a roster row's ID to its position.
func MemberIndexByID(rows []model.Member, id string) (int, bool) {
	for i, m := range rows {
		if m.ID == id {
			return i, true
		}
	}
	return 0, false
}

// DeleteMemberAt removes the roster row at pos, preserving order.
func DeleteMemberAt(rows []model.Member, pos int) []model.Member {
	if pos < 0 || pos >= len(rows) {
		return rows
	}
	out := make([]model.Member, 0, len(rows)-1)
	out = append(out, rows[:pos]...)
	out = append(out, rows[pos+1:]...)
	return out
}
