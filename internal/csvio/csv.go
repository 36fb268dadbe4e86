// Package csvio implements the CSV import/export contract for the
// attendance ledger: UTF-8, comma separated, header row, canonical
// column order on export, order-independent required columns on import.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// Columns is the canonical attendance header, in export order.
var Columns = []string{"Timestamp", "ServiceDate", "ServiceName", "Attendee", "Household", "Notes"}

// ErrMissingColumns wraps an import rejection.  Use MissingColumnsError
// to recover the column names for the user-facing message.
var ErrMissingColumns = errors.New("csv missing required columns")

// MissingColumnsError reports which required columns an uploaded file
// lacks.  The whole import is rejected; there is no partial import.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("csv must include columns: %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// Export writes the full ledger to w in canonical column order, header
// included.  Record IDs are an internal concern and are not exported;
// an import regenerates them.
func Export(w io.Writer, rows []model.AttendanceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Timestamp,
			r.ServiceDate,
			r.ServiceName,
			r.Attendee,
			fmt.Sprintf("%d", ledger.ClampPositive(r.Household, 1)),
			r.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import parses an uploaded attendance CSV.  The header may list the
// required columns in any order; extra columns are ignored.  When any
// required column is missing, a *MissingColumnsError naming all of them
// is returned and nothing is imported.  Rows are normalized per the
// ledger rules (household coerced to >= 1, dates to ISO form).
func Import(r io.Reader) ([]model.AttendanceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MissingColumnsError{Columns: Columns}
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	missing := make([]string, 0)
	for _, name := range Columns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	field := func(rec []string, name string) string {
		i := idx[name]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	out := make([]model.AttendanceRecord, 0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, ledger.NormalizeAttendance(model.AttendanceRecord{
			Timestamp:   strings.TrimSpace(field(rec, "Timestamp")),
			ServiceDate: field(rec, "ServiceDate"),
			ServiceName: field(rec, "ServiceName"),
			Attendee:    field(rec, "Attendee"),
			Household:   ledger.AsInt(field(rec, "Household"), 1),
			Notes:       field(rec, "Notes"),
		}))
	}
	return out, nil
}
