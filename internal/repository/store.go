// Package repository provides the persistence layer for the three
// ledgers (attendance, roster, absences).  Every backend implements the
// same whole-ledger contract: Load returns the current table, Save
// normalizes and overwrites the whole table in one shot.
//
// The overwrite semantics are deliberate and carry a documented
// limitation: two concurrently running instances doing load -> mutate ->
// save against the same backend race, and the later save wins for the
// whole table, not per row.  There is no version stamp or row locking.
package repository

import (
	"context"
	"errors"

	"github.com/parishtools/attendance-register/internal/model"
)

// ErrNotFound is returned when a record addressed by ID does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateMember is returned when a roster entry with the same
// normalized display name already exists.  Handlers translate this into
// an HTTP 409 response.
var ErrDuplicateMember = errors.New("member already exists")

// Store is the whole-ledger persistence contract.  A Save either writes
// the complete table or returns an error; partial writes are not an
// accepted outcome.  Implementations must tolerate an empty backend and
// return empty tables rather than errors for "no data yet".
type Store interface {
	LoadAttendance(ctx context.Context) ([]model.AttendanceRecord, error)
	SaveAttendance(ctx context.Context, rows []model.AttendanceRecord) error

	LoadMembers(ctx context.Context) ([]model.Member, error)
	SaveMembers(ctx context.Context, rows []model.Member) error

	LoadAbsences(ctx context.Context) ([]model.AbsenceNote, error)
	SaveAbsences(ctx context.Context, rows []model.AbsenceNote) error
}
