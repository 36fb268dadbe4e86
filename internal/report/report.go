// Package report computes the derived views of the attendance ledger:
// per-service totals, daily time series with a trailing rolling mean,
// service-mix breakdowns, top-attendee rankings and the KPI block.  All
// functions are pure; they read a loaded ledger and never touch a store.
package report

// ServiceTotal is one row of the per-service summary: the number of
// ledger entries and the number of people (household sum) for a single
// (date, name) service instance.
type ServiceTotal struct {
	ServiceDate string `json:"service_date"`
	ServiceName string `json:"service_name"`
	Entries     int    `json:"entries"`
	People      int    `json:"people"`
}

// DailyPoint is one calendar day of the attendance series.  Roll carries
// the trailing rolling mean of People and is nil for the leading points
// that have fewer than window predecessors.
type DailyPoint struct {
	Date    string   `json:"date"`
	People  int      `json:"people"`
	Entries int      `json:"entries"`
	Roll    *float64 `json:"roll"`
}

// MixPoint is one (day, service) slice of the stacked service mix.
type MixPoint struct {
	Date        string `json:"date"`
	ServiceName string `json:"service_name"`
	People      int    `json:"people"`
}

// AttendeeTotal is one row of the top-attendee ranking.
type AttendeeTotal struct {
	Attendee string `json:"attendee"`
	Times    int    `json:"times"`
	People   int    `json:"people"`
}

// KPIBlock mirrors the dashboard's headline numbers for a filtered slice
// of the ledger.
type KPIBlock struct {
	UniqueAttendees int     `json:"unique_attendees"`
	Entries         int     `json:"entries"`
	People          int     `json:"people"`
	AvgHousehold    float64 `json:"avg_household"`
}

// DefaultTopLimit bounds the attendee ranking when the caller does not
// supply a limit.
const DefaultTopLimit = 20

// Rolling-mean window bounds, matching the dashboard's slider.
const (
	MinWindow = 1
	MaxWindow = 8
)
