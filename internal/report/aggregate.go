package report

import (
	"sort"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// TotalsPerService groups the whole ledger by (service date, service
// name) and emits entry counts and people sums, sorted ascending by
// (date, name).  Rows with unparsable dates stay in the totals; they
// order by their raw date string after the well-formed dates.
func TotalsPerService(rows []model.AttendanceRecord) []ServiceTotal {
	type key struct{ date, name string }
	totals := make(map[key]*ServiceTotal)
	order := make([]key, 0)
	for _, r := range rows {
		k := key{r.ServiceDate, r.ServiceName}
		t, ok := totals[k]
		if !ok {
			t = &ServiceTotal{ServiceDate: r.ServiceDate, ServiceName: r.ServiceName}
			totals[k] = t
			order = append(order, k)
		}
		t.Entries++
		t.People += ledger.ClampPositive(r.Household, 1)
	}

	out := make([]ServiceTotal, 0, len(order))
	for _, k := range order {
		out = append(out, *totals[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ServiceDate != out[j].ServiceDate {
			return dateLess(out[i].ServiceDate, out[j].ServiceDate)
		}
		return out[i].ServiceName < out[j].ServiceName
	})
	return out
}

// ServiceMix groups a filtered slice by (day, service) for stacked-area
// rendering, sorted by (date, name).
func ServiceMix(rows []model.AttendanceRecord, start, end, service string) []MixPoint {
	filtered := FilterRange(rows, start, end, service)
	type key struct{ date, name string }
	totals := make(map[key]*MixPoint)
	order := make([]key, 0)
	for _, r := range filtered {
		k := key{r.ServiceDate, r.ServiceName}
		p, ok := totals[k]
		if !ok {
			p = &MixPoint{Date: r.ServiceDate, ServiceName: r.ServiceName}
			totals[k] = p
			order = append(order, k)
		}
		p.People += ledger.ClampPositive(r.Household, 1)
	}
	out := make([]MixPoint, 0, len(order))
	for _, k := range order {
		out = append(out, *totals[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ServiceName < out[j].ServiceName
	})
	return out
}

// TopAttendees ranks attendees in a filtered slice by people descending.
// Ties keep the order in which attendees first appear in the ledger
// (stable sort).  A non-positive limit falls back to DefaultTopLimit.
func TopAttendees(rows []model.AttendanceRecord, start, end, service string, limit int) []AttendeeTotal {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	filtered := FilterRange(rows, start, end, service)
	totals := make(map[string]*AttendeeTotal)
	order := make([]string, 0)
	for _, r := range filtered {
		t, ok := totals[r.Attendee]
		if !ok {
			t = &AttendeeTotal{Attendee: r.Attendee}
			totals[r.Attendee] = t
			order = append(order, r.Attendee)
		}
		t.Times++
		t.People += ledger.ClampPositive(r.Household, 1)
	}
	out := make([]AttendeeTotal, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].People > out[j].People })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// KPIs computes the dashboard headline numbers over a filtered slice.
func KPIs(rows []model.AttendanceRecord, start, end, service string) KPIBlock {
	filtered := FilterRange(rows, start, end, service)
	unique := make(map[string]struct{})
	people := 0
	for _, r := range filtered {
		unique[r.Attendee] = struct{}{}
		people += ledger.ClampPositive(r.Household, 1)
	}
	entries := len(filtered)
	div := entries
	if div < 1 {
		div = 1
	}
	return KPIBlock{
		UniqueAttendees: len(unique),
		Entries:         entries,
		People:          people,
		AvgHousehold:    float64(people) / float64(div),
	}
}

// dateLess orders two service dates as calendar dates when both parse.
// Well-formed dates sort before malformed ones; two malformed values
// fall back to string order so the output stays deterministic.
func dateLess(a, b string) bool {
	ta, okA := ledger.DateValue(a)
	tb, okB := ledger.DateValue(b)
	switch {
	case okA && okB:
		return ta.Before(tb)
	case okA:
		return true
	case okB:
		return false
	default:
		return a < b
	}
}
