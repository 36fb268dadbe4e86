package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/csvio"
	"github.com/parishtools/attendance-register/internal/repository"
)

// CSVHandler implements the export/import surface of the register.
// Export is public like the rest of the read views; import replaces the
// whole ledger and is admin-only.
type CSVHandler struct {
	Store repository.Store
}

func NewCSVHandler(store repository.Store) *CSVHandler {
	if store == nil {
		panic("nil store passed to NewCSVHandler")
	}
	return &CSVHandler{Store: store}
}

// Export handles GET /v1/attendance/export and streams the full ledger
// as attendance.csv in canonical column order.
func (h *CSVHandler) Export(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows := loadAttendanceOrEmpty(ctx, h.Store)

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="attendance.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return csvio.Export(c.Response(), rows)
}

// Import handles POST /v1/attendance/import.  The uploaded file must
// contain every canonical column (any order); otherwise the whole
// import is rejected with a message naming the missing columns and the
// existing ledger is left untouched.  A valid file replaces the ledger.
func (h *CSVHandler) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "csv file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "open upload failed: " + err.Error()})
	}
	defer f.Close()

	rows, err := csvio.Import(f)
	if err != nil {
		var missing *csvio.MissingColumnsError
		if errors.As(err, &missing) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": missing.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "import failed: " + err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.SaveAttendance(ctx, rows); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "save ledger failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"imported": len(rows)})
}
