package repository

import (
	"context"
	"sync"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// MemoryStore keeps all three ledgers in process memory.  It is the
// default backend for single-device use and for tests.  All methods copy
// on the way in and out so callers can never alias the internal slices.
type MemoryStore struct {
	mu         sync.RWMutex
	attendance []model.AttendanceRecord
	members    []model.Member
	absences   []model.AbsenceNote
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) LoadAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out, nil
}

func (s *MemoryStore) SaveAttendance(ctx context.Context, rows []model.AttendanceRecord) error {
	normalized := ledger.NormalizeAttendanceAll(rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = normalized
	return nil
}

func (s *MemoryStore) LoadMembers(ctx context.Context) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Member, len(s.members))
	copy(out, s.members)
	return out, nil
}

func (s *MemoryStore) SaveMembers(ctx context.Context, rows []model.Member) error {
	normalized := ledger.NormalizeMemberAll(rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = normalized
	return nil
}

func (s *MemoryStore) LoadAbsences(ctx context.Context) ([]model.AbsenceNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AbsenceNote, len(s.absences))
	copy(out, s.absences)
	return out, nil
}

func (s *MemoryStore) SaveAbsences(ctx context.Context, rows []model.AbsenceNote) error {
	normalized := ledger.NormalizeAbsenceAll(rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.absences = normalized
	return nil
}
