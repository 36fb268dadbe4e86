package handler // handler defines the HTTP handlers for the register API

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
	"github.com/parishtools/attendance-register/internal/repository"
)

// dbTimeout bounds every store call issued from a request.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// loadAttendanceOrEmpty reads the attendance ledger for a read-only
// view.  Load failures degrade to an empty table so the dashboard stays
// up; the failure is logged rather than surfaced to the caller.
func loadAttendanceOrEmpty(ctx context.Context, store repository.Store) []model.AttendanceRecord {
	rows, err := store.LoadAttendance(ctx)
	if err != nil {
		log.Printf("handler: load attendance failed, serving empty ledger: %v", err)
		return []model.AttendanceRecord{}
	}
	return rows
}

// householdFrom coerces the household field of a JSON body, which
// clients send either as a number or as free text.  Anything that is
// not a positive integer becomes 1.
func householdFrom(v any) int {
	switch t := v.(type) {
	case nil:
		return 1
	case float64:
		n := int(t)
		if n <= 0 || float64(n) != t {
			return 1
		}
		return n
	case string:
		return ledger.AsInt(t, 1)
	default:
		return 1
	}
}

// activeFrom coerces the roster active flag, stored as 1/0, accepting
// booleans, numbers and strings.  Invalid input defaults to active.
func activeFrom(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch t {
		case "0", "false", "FALSE", "False":
			return false
		}
		return true
	default:
		return true
	}
}
