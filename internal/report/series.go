package report

import (
	"sort"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// DailySeries restricts the ledger to the inclusive date range and
// optional service filter, groups by calendar day and augments each
// point with a trailing rolling mean of People over the given window.
// The window is clamped to [MinWindow, MaxWindow].  Points with fewer
// than window predecessors carry a nil Roll; they still contribute their
// raw People value to later windows.
func DailySeries(rows []model.AttendanceRecord, start, end, service string, window int) []DailyPoint {
	if window < MinWindow {
		window = MinWindow
	}
	if window > MaxWindow {
		window = MaxWindow
	}

	filtered := FilterRange(rows, start, end, service)
	totals := make(map[string]*DailyPoint)
	for _, r := range filtered {
		p, ok := totals[r.ServiceDate]
		if !ok {
			p = &DailyPoint{Date: r.ServiceDate}
			totals[r.ServiceDate] = p
		}
		p.People += ledger.ClampPositive(r.Household, 1)
		p.Entries++
	}

	out := make([]DailyPoint, 0, len(totals))
	for _, p := range totals {
		out = append(out, *p)
	}
	// FilterRange already dropped unparsable dates, so ISO string order
	// is calendar order here.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	for i := range out {
		if i+1 < window {
			continue
		}
		sum := 0
		for j := i + 1 - window; j <= i; j++ {
			sum += out[j].People
		}
		mean := float64(sum) / float64(window)
		out[i].Roll = &mean
	}
	return out
}
