package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/parishtools/attendance-register/internal/config"
	"github.com/parishtools/attendance-register/internal/handler"
	"github.com/parishtools/attendance-register/internal/repository"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{JWTSecret: testSecret, AccessTTLMin: 5}
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	store := repository.NewMemoryStore()
	e := echo.New()
	Register(e, Handlers{
		Auth:       handler.NewAuthHandler(cfg, string(hash)),
		Attendance: handler.NewAttendanceHandler(store),
		Report:     handler.NewReportHandler(store),
		Roster:     handler.NewRosterHandler(store),
		CSV:        handler.NewCSVHandler(store),
	}, testSecret, nil)
	return e
}

func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func unlock(t *testing.T, e *echo.Echo, pin string) (string, int) {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/unlock", `{"pin":"`+pin+`"}`, "")
	if rec.Code != http.StatusOK {
		return "", rec.Code
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode unlock: %v", err)
	}
	return resp.Token, rec.Code
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestUnlockWrongPIN(t *testing.T) {
	e := newTestServer(t)
	if _, code := unlock(t, e, "0000"); code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
}

func TestMutationsRequireToken(t *testing.T) {
	e := newTestServer(t)
	body := `{"service_date":"2024-01-07","service_name":"Morning","attendee":"Jane Doe","household":3}`

	rec := do(e, http.MethodPost, "/v1/attendance", body, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", rec.Code)
	}

	rec = do(e, http.MethodPost, "/v1/attendance", body, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", rec.Code)
	}

	token, code := unlock(t, e, "4321")
	if code != http.StatusOK {
		t.Fatalf("unlock status = %d", code)
	}
	rec = do(e, http.MethodPost, "/v1/attendance", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("with token status = %d, body %s", rec.Code, rec.Body.String())
	}

	// The new record shows up in the public log view without a token.
	rec = do(e, http.MethodGet, "/v1/attendance?attendee=jane", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	e := newTestServer(t)
	for _, target := range []string{
		"/v1/attendance",
		"/v1/attendance/export",
		"/v1/reports/summary",
		"/v1/reports/services",
		"/v1/reports/daily",
		"/v1/reports/mix",
		"/v1/reports/top",
		"/v1/reports/kpis",
	} {
		rec := do(e, http.MethodGet, target, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", target, rec.Code)
		}
	}
}

func TestRosterRoutesAreAdminOnly(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/v1/members", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("members without token = %d, want 401", rec.Code)
	}

	token, code := unlock(t, e, "4321")
	if code != http.StatusOK {
		t.Fatalf("unlock status = %d", code)
	}
	rec = do(e, http.MethodGet, "/v1/members", "", token)
	if rec.Code != http.StatusOK {
		t.Errorf("members with token = %d, want 200", rec.Code)
	}
}
