package repository

import (
	"context"
	"testing"

	"github.com/parishtools/attendance-register/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	got, err := s.LoadAttendance(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store has %d rows", len(got))
	}

	rows := []model.AttendanceRecord{
		{ServiceDate: "2024-01-07", ServiceName: "Morning", Attendee: " Jane Doe ", Household: 0},
	}
	if err := s.SaveAttendance(ctx, rows); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = s.LoadAttendance(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	// Saves normalize: trimmed attendee, household clamped, ID assigned.
	if got[0].Attendee != "Jane Doe" || got[0].Household != 1 || got[0].ID == "" {
		t.Errorf("row = %+v", got[0])
	}
}

func TestMemoryStoreSaveReplacesWholeLedger(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.SaveAttendance(ctx, []model.AttendanceRecord{
		{ServiceDate: "2024-01-07", Attendee: "A", Household: 1},
		{ServiceDate: "2024-01-07", Attendee: "B", Household: 1},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveAttendance(ctx, []model.AttendanceRecord{
		{ServiceDate: "2024-02-04", Attendee: "C", Household: 2},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := s.LoadAttendance(ctx)
	if len(got) != 1 || got[0].Attendee != "C" {
		t.Errorf("ledger after second save = %+v", got)
	}
}

func TestMemoryStoreLoadCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.SaveMembers(ctx, []model.Member{{FirstName: "Jane", LastName: "Doe", Active: true}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, _ := s.LoadMembers(ctx)
	first[0].Attendee = "tampered"
	second, _ := s.LoadMembers(ctx)
	if second[0].Attendee != "Jane Doe" {
		t.Errorf("store aliased its internal slice: %q", second[0].Attendee)
	}
}

func TestMemoryStoreAbsences(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.SaveAbsences(ctx, []model.AbsenceNote{
		{ServiceDate: "2024-01-07", ServiceName: "Morning", Attendee: "Bob", Note: "sick"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadAbsences(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Note != "sick" || got[0].ID == "" {
		t.Errorf("absences = %+v", got)
	}
}
