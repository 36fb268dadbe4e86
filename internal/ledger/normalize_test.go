package ledger

import (
	"testing"

	"github.com/parishtools/attendance-register/internal/model"
)

func TestAsInt(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"3", 1, 3},
		{" 7 ", 1, 7},
		{"1", 1, 1},
		{"0", 1, 1},
		{"-2", 1, 1},
		{"abc", 1, 1},
		{"", 1, 1},
		{"2.5", 1, 1},
		{"12", 4, 12},
		{"x", 4, 4},
	}
	for _, tc := range cases {
		if got := AsInt(tc.in, tc.def); got != tc.want {
			t.Errorf("AsInt(%q, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if iso, ok := ParseDate("2024-01-07"); !ok || iso != "2024-01-07" {
		t.Fatalf("ParseDate ISO: got %q, %v", iso, ok)
	}
	if iso, ok := ParseDate("2024-01-07T10:30:00Z"); !ok || iso != "2024-01-07" {
		t.Fatalf("ParseDate RFC3339: got %q, %v", iso, ok)
	}
	if _, ok := ParseDate("not-a-date"); ok {
		t.Fatal("ParseDate accepted garbage")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatal("ParseDate accepted empty input")
	}
}

func TestNormalizeAttendance(t *testing.T) {
	r := NormalizeAttendance(model.AttendanceRecord{
		ServiceDate: "2024-01-07T00:00:00Z",
		ServiceName: "  Sunday 1st Service ",
		Attendee:    " Jane Doe ",
		Household:   0,
	})
	if r.ID == "" {
		t.Error("expected a generated ID")
	}
	if r.ServiceDate != "2024-01-07" {
		t.Errorf("ServiceDate = %q, want 2024-01-07", r.ServiceDate)
	}
	if r.ServiceName != "Sunday 1st Service" || r.Attendee != "Jane Doe" {
		t.Errorf("trim failed: %q / %q", r.ServiceName, r.Attendee)
	}
	if r.Household != 1 {
		t.Errorf("Household = %d, want 1", r.Household)
	}

	// An existing ID must survive re-normalization.
	again := NormalizeAttendance(r)
	if again.ID != r.ID {
		t.Errorf("ID changed on re-normalization: %q -> %q", r.ID, again.ID)
	}

	// Unparsable dates are kept verbatim (trimmed) for all-time totals.
	bad := NormalizeAttendance(model.AttendanceRecord{ServiceDate: " sometime ", Attendee: "X", Household: 2})
	if bad.ServiceDate != "sometime" {
		t.Errorf("bad date = %q, want %q", bad.ServiceDate, "sometime")
	}
}

func TestNormalizeMemberDerivesAttendee(t *testing.T) {
	m := NormalizeMember(model.Member{FirstName: " Jane ", LastName: " Doe "})
	if m.Attendee != "Jane Doe" {
		t.Errorf("Attendee = %q, want %q", m.Attendee, "Jane Doe")
	}
	// An explicit display name is trimmed but not rebuilt.
	m2 := NormalizeMember(model.Member{FirstName: "Jane", LastName: "Doe", Attendee: " Sister Jane "})
	if m2.Attendee != "Sister Jane" {
		t.Errorf("Attendee = %q, want %q", m2.Attendee, "Sister Jane")
	}
}
