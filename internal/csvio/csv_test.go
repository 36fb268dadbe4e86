package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/parishtools/attendance-register/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	rows := []model.AttendanceRecord{
		{ID: "a", Timestamp: "2024-01-07 10:00:00", ServiceDate: "2024-01-07", ServiceName: "Morning", Attendee: "Jane Doe", Household: 3, Notes: "visitor"},
		{ID: "b", Timestamp: "2024-01-14 10:00:00", ServiceDate: "2024-01-14", ServiceName: "Morning", Attendee: "John Smith", Household: 1},
	}

	var buf bytes.Buffer
	if err := Export(&buf, rows); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("len = %d, want %d", len(got), len(rows))
	}
	for i, want := range rows {
		g := got[i]
		if g.Timestamp != want.Timestamp || g.ServiceDate != want.ServiceDate ||
			g.ServiceName != want.ServiceName || g.Attendee != want.Attendee ||
			g.Household != want.Household || g.Notes != want.Notes {
			t.Errorf("row %d = %+v, want fields of %+v", i, g, want)
		}
		// IDs are not exported; imports regenerate them.
		if g.ID == "" || g.ID == want.ID {
			t.Errorf("row %d ID = %q, want fresh non-empty", i, g.ID)
		}
	}
}

func TestExportHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "Timestamp,ServiceDate,ServiceName,Attendee,Household,Notes\n"
	if buf.String() != want {
		t.Errorf("header = %q, want %q", buf.String(), want)
	}
}

func TestImportHeaderOrderIndependent(t *testing.T) {
	in := strings.Join([]string{
		"Attendee,Household,Notes,Timestamp,ServiceDate,ServiceName,Extra",
		"Jane Doe,3,,2024-01-07 10:00:00,2024-01-07,Morning,ignored",
	}, "\n")
	got, err := Import(strings.NewReader(in))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Attendee != "Jane Doe" || got[0].Household != 3 || got[0].ServiceName != "Morning" {
		t.Errorf("row = %+v", got[0])
	}
}

func TestImportMissingColumnsRejected(t *testing.T) {
	in := strings.Join([]string{
		"Timestamp,ServiceDate,ServiceName,Attendee,Notes",
		"2024-01-07 10:00:00,2024-01-07,Morning,Jane Doe,",
	}, "\n")
	_, err := Import(strings.NewReader(in))
	if err == nil {
		t.Fatal("expected rejection")
	}
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T", err)
	}
	if len(missing.Columns) != 1 || missing.Columns[0] != "Household" {
		t.Errorf("missing = %v, want [Household]", missing.Columns)
	}
	if !errors.Is(err, ErrMissingColumns) {
		t.Error("expected errors.Is match on ErrMissingColumns")
	}
}

func TestImportCoercesHousehold(t *testing.T) {
	in := strings.Join([]string{
		"Timestamp,ServiceDate,ServiceName,Attendee,Household,Notes",
		",2024-01-07,Morning,A,abc,",
		",2024-01-07,Morning,B,-4,",
		",2024-01-07,Morning,C,5,",
	}, "\n")
	got, err := Import(strings.NewReader(in))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	wants := []int{1, 1, 5}
	for i, w := range wants {
		if got[i].Household != w {
			t.Errorf("row %d household = %d, want %d", i, got[i].Household, w)
		}
	}
}

func TestImportEmptyFile(t *testing.T) {
	_, err := Import(strings.NewReader(""))
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingColumnsError", err)
	}
	if len(missing.Columns) != len(Columns) {
		t.Errorf("missing = %v, want all columns", missing.Columns)
	}
}
