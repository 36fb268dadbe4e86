package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/handler"
	"github.com/parishtools/attendance-register/internal/middleware"
)

// Handlers bundles everything the router needs to wire the API.
type Handlers struct {
	Auth       *handler.AuthHandler
	Attendance *handler.AttendanceHandler
	Report     *handler.ReportHandler
	Roster     *handler.RosterHandler
	CSV        *handler.CSVHandler
}

// Register wires all routes on the provided Echo instance.  Reads are
// public: the register is a congregation-facing dashboard.  Mutations
// require the ADMIN token issued by the PIN unlock endpoint; the unlock
// endpoint itself is rate limited via the supplied middleware (pass nil
// to skip limiting, e.g. in tests).
func Register(e *echo.Echo, h Handlers, jwtSecret string, unlockLimiter echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// PIN gate.
	if unlockLimiter != nil {
		e.POST("/v1/auth/unlock", h.Auth.Unlock, unlockLimiter)
	} else {
		e.POST("/v1/auth/unlock", h.Auth.Unlock)
	}

	// Public read views: the log, the dashboard data and the CSV export.
	e.GET("/v1/attendance", h.Attendance.List)
	e.GET("/v1/attendance/export", h.CSV.Export)
	e.GET("/v1/reports/summary", h.Report.Summary)
	e.GET("/v1/reports/services", h.Report.Services)
	e.GET("/v1/reports/daily", h.Report.Daily)
	e.GET("/v1/reports/mix", h.Report.Mix)
	e.GET("/v1/reports/top", h.Report.Top)
	e.GET("/v1/reports/kpis", h.Report.KPIs)

	// Privileged operations live under the same /v1 prefix but behind
	// the JWT and role middleware.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))

	admin.POST("/attendance", h.Attendance.Create)
	admin.PUT("/attendance/:id", h.Attendance.Update)
	admin.DELETE("/attendance/:id", h.Attendance.Delete)
	admin.POST("/attendance/import", h.CSV.Import)

	admin.GET("/members", h.Roster.ListMembers)
	admin.POST("/members", h.Roster.CreateMember)
	admin.PUT("/members/:id", h.Roster.UpdateMember)
	admin.DELETE("/members/:id", h.Roster.DeleteMember)

	admin.POST("/checkin", h.Roster.CheckIn)
	admin.GET("/absentees", h.Roster.Absentees)
	admin.GET("/absences", h.Roster.ListAbsences)
	admin.POST("/absences", h.Roster.RecordAbsences)
}
