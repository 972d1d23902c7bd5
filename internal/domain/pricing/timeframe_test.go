package pricing

import (
	"testing"
	"time"

	"seminar_billing/internal/domain/entities"
)

func TestCalculateTimeFrame(t *testing.T) {
	// 2024-03-07 is a Thursday.
	thu := entities.NewDate(2024, time.March, 7)
	mon := entities.NewDate(2024, time.March, 11)

	cases := []struct {
		name      string
		arrival   entities.Date
		departure entities.Date
		workdays  entities.WeekdaySet
		want      TimeFrame
	}{
		{
			name:      "thursday to monday",
			arrival:   thu,
			departure: mon,
			workdays:  entities.MondayToFriday(),
			want:      TimeFrame{CalendarDays: 5, Nights: 4, Workdays: 3},
		},
		{
			name:      "single day",
			arrival:   thu,
			departure: thu,
			workdays:  entities.MondayToFriday(),
			want:      TimeFrame{CalendarDays: 1, Nights: 0, Workdays: 1},
		},
		{
			name:      "no active workdays",
			arrival:   thu,
			departure: mon,
			workdays:  entities.WeekdaySet{},
			want:      TimeFrame{CalendarDays: 5, Nights: 4, Workdays: 0},
		},
		{
			name:      "weekend only",
			arrival:   thu,
			departure: mon,
			workdays:  entities.NewWeekdaySet(time.Saturday, time.Sunday),
			want:      TimeFrame{CalendarDays: 5, Nights: 4, Workdays: 2},
		},
		{
			name:      "missing arrival",
			departure: mon,
			workdays:  entities.MondayToFriday(),
			want:      TimeFrame{},
		},
		{
			name:     "missing departure",
			arrival:  thu,
			workdays: entities.MondayToFriday(),
			want:     TimeFrame{},
		},
		{
			name:      "inverted range keeps raw day count",
			arrival:   mon,
			departure: thu,
			workdays:  entities.MondayToFriday(),
			want:      TimeFrame{CalendarDays: -3, Nights: 0, Workdays: 0},
		},
		{
			name:      "departure the day before arrival",
			arrival:   mon,
			departure: mon.AddDays(-1),
			workdays:  entities.MondayToFriday(),
			want:      TimeFrame{CalendarDays: 0, Nights: 0, Workdays: 0},
		},
		{
			name:      "across DST change",
			arrival:   entities.NewDate(2024, time.March, 30),
			departure: entities.NewDate(2024, time.April, 2),
			workdays:  entities.MondayToFriday(),
			want:      TimeFrame{CalendarDays: 4, Nights: 3, Workdays: 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTimeFrame(tc.arrival, tc.departure, tc.workdays)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCalculateTimeFrame_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	arrival := entities.DateOf(time.Date(2024, time.March, 7, 23, 30, 0, 0, loc))
	departure := entities.DateOf(time.Date(2024, time.March, 11, 0, 15, 0, 0, loc))

	got := CalculateTimeFrame(arrival, departure, entities.MondayToFriday())
	if got.CalendarDays != 5 || got.Nights != 4 || got.Workdays != 3 {
		t.Fatalf("unexpected time frame: %+v", got)
	}
}

func TestCalculateTimeFrame_Centuries(t *testing.T) {
	got := CalculateTimeFrame(entities.NewDate(1700, time.January, 1), entities.NewDate(2100, time.January, 1), nil)
	if got.CalendarDays != 146098 || got.Nights != 146097 || got.Workdays != 0 {
		t.Fatalf("unexpected time frame: %+v", got)
	}
}

func TestCalculateTimeFrame_Properties(t *testing.T) {
	start := entities.NewDate(2024, time.January, 1)
	sets := []entities.WeekdaySet{
		{},
		entities.MondayToFriday(),
		entities.NewWeekdaySet(time.Wednesday),
		entities.NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday),
	}

	for length := 0; length < 40; length++ {
		for _, set := range sets {
			tf := CalculateTimeFrame(start, start.AddDays(length), set)
			wantNights := tf.CalendarDays - 1
			if wantNights < 0 {
				wantNights = 0
			}
			if tf.Nights != wantNights {
				t.Fatalf("length %d: nights %d, calendar days %d", length, tf.Nights, tf.CalendarDays)
			}
			if tf.Workdays > tf.CalendarDays {
				t.Fatalf("length %d: workdays %d exceed calendar days %d", length, tf.Workdays, tf.CalendarDays)
			}
			if set.Len() == 0 && tf.Workdays != 0 {
				t.Fatalf("length %d: expected no workdays, got %d", length, tf.Workdays)
			}
			if set.Len() == 7 && tf.Workdays != tf.CalendarDays {
				t.Fatalf("length %d: every day active, expected %d workdays, got %d", length, tf.CalendarDays, tf.Workdays)
			}
		}
	}
}
