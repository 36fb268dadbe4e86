package report

import (
	"testing"

	"github.com/parishtools/attendance-register/internal/model"
)

func row(date, name, attendee string, household int) model.AttendanceRecord {
	return model.AttendanceRecord{
		ServiceDate: date,
		ServiceName: name,
		Attendee:    attendee,
		Household:   household,
	}
}

func TestTotalsPerService(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-14", "Evening", "Carol", 1),
		row("2024-01-07", "Morning", "Alice", 2),
		row("2024-01-07", "Morning", "Bob", 3),
		row("2024-01-07", "Evening", "Dave", 1),
	}
	got := TotalsPerService(rows)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Sorted ascending by (date, name).
	want := []ServiceTotal{
		{ServiceDate: "2024-01-07", ServiceName: "Evening", Entries: 1, People: 1},
		{ServiceDate: "2024-01-07", ServiceName: "Morning", Entries: 2, People: 5},
		{ServiceDate: "2024-01-14", ServiceName: "Evening", Entries: 1, People: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("totals[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTotalsPerServiceMalformedDatesSortLast(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("whenever", "Morning", "X", 1),
		row("2024-03-03", "Morning", "Y", 1),
	}
	got := TotalsPerService(rows)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ServiceDate != "2024-03-03" || got[1].ServiceDate != "whenever" {
		t.Errorf("order: %q, %q", got[0].ServiceDate, got[1].ServiceDate)
	}
}

func TestTopAttendees(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-07", "Morning", "Alice", 2),
		row("2024-01-14", "Morning", "Alice", 2),
		row("2024-01-07", "Morning", "Bob", 5),
		row("2024-01-07", "Morning", "Carol", 4),
	}
	got := TopAttendees(rows, "", "", "", 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Attendee != "Bob" || got[0].People != 5 || got[0].Times != 1 {
		t.Errorf("top[0] = %+v", got[0])
	}
	if got[1].Attendee != "Alice" || got[1].People != 4 || got[1].Times != 2 {
		t.Errorf("top[1] = %+v", got[1])
	}
}

func TestTopAttendeesTiesKeepFirstAppearance(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-07", "Morning", "Zed", 3),
		row("2024-01-07", "Morning", "Amy", 3),
	}
	got := TopAttendees(rows, "", "", "", 0)
	if got[0].Attendee != "Zed" || got[1].Attendee != "Amy" {
		t.Errorf("tie order: %q, %q", got[0].Attendee, got[1].Attendee)
	}
}

func TestKPIs(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-07", "Morning", "Alice", 2),
		row("2024-01-14", "Morning", "Alice", 2),
		row("2024-01-07", "Morning", "Bob", 4),
	}
	got := KPIs(rows, "", "", "")
	if got.UniqueAttendees != 2 || got.Entries != 3 || got.People != 8 {
		t.Errorf("KPIs = %+v", got)
	}
	if diff := got.AvgHousehold - 8.0/3.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgHousehold = %v", got.AvgHousehold)
	}

	empty := KPIs(nil, "", "", "")
	if empty.AvgHousehold != 0 || empty.Entries != 0 {
		t.Errorf("empty KPIs = %+v", empty)
	}
}

func TestFilterRange(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-01", "Morning", "A", 1),
		row("2024-01-15", "Morning", "B", 1),
		row("2024-02-01", "Evening", "C", 1),
		row("garbage", "Morning", "D", 1),
	}
	got := FilterRange(rows, "2024-01-10", "2024-02-01", "")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Attendee != "B" || got[1].Attendee != "C" {
		t.Errorf("rows: %q, %q", got[0].Attendee, got[1].Attendee)
	}

	// Service filter narrows further; open bounds keep everything parseable.
	got = FilterRange(rows, "", "", "Morning")
	if len(got) != 2 {
		t.Errorf("service filter len = %d, want 2", len(got))
	}
}

func TestFilterLogCaseInsensitive(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-07", "Sunday 1st Service", "Jane Doe", 3),
		row("2024-01-07", "Sunday 1st Service", "John Smith", 1),
		row("2024-01-14", "Sunday 1st Service", "Jane Doe", 3),
	}
	got := FilterLog(rows, "2024-01-07", "sunday", "JANE")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Attendee != "Jane Doe" {
		t.Errorf("attendee = %q", got[0].Attendee)
	}
}

func TestFilterByService(t *testing.T) {
	rows := []model.AttendanceRecord{
		row("2024-01-07", "Morning", "A", 1),
		row("2024-01-07", "Evening", "B", 1),
		row("2024-01-14", "Morning", "C", 1),
	}
	if got := FilterByService(rows, "2024-01-07", ""); len(got) != 2 {
		t.Errorf("empty name len = %d, want 2", len(got))
	}
	if got := FilterByService(rows, "2024-01-07", "Evening"); len(got) != 1 || got[0].Attendee != "B" {
		t.Errorf("named service = %+v", got)
	}
}
