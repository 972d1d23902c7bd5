// Package pricing turns a seminar quote draft into its cost, revenue and
// margin breakdown. Everything here is pure: no I/O, no shared state.
package pricing

import "seminar_billing/internal/domain/entities"

// TimeFrame holds the day counts derived from a stay.
type TimeFrame struct {
	CalendarDays int
	Nights       int
	Workdays     int
}

// CalculateTimeFrame counts the days of the inclusive range [arrival,
// departure].
//
// Either date missing yields the zero TimeFrame. An inverted range is not
// rejected here: CalendarDays carries the raw difference plus one, Nights is
// floored at zero and no workday is counted.
func CalculateTimeFrame(arrival, departure entities.Date, activeWorkdays entities.WeekdaySet) TimeFrame {
	if arrival.IsZero() || departure.IsZero() {
		return TimeFrame{}
	}

	calendarDays := departure.DaysSince(arrival) + 1
	nights := calendarDays - 1
	if nights < 0 {
		nights = 0
	}

	return TimeFrame{
		CalendarDays: calendarDays,
		Nights:       nights,
		Workdays:     countWorkdays(arrival, departure, activeWorkdays),
	}
}

func countWorkdays(arrival, departure entities.Date, activeWorkdays entities.WeekdaySet) int {
	if activeWorkdays.Len() == 0 {
		return 0
	}
	n := 0
	for d := arrival; !d.After(departure); d = d.AddDays(1) {
		if activeWorkdays.Contains(d.Weekday()) {
			n++
		}
	}
	return n
}
