package pricing

import (
	"testing"

	"seminar_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCalculateStaffCosts(t *testing.T) {
	tf := TimeFrame{CalendarDays: 5, Nights: 4, Workdays: 3}

	t.Run("teachers on workdays, coordinators on every day", func(t *testing.T) {
		teachers := []entities.Teacher{
			{Name: "Ana", HourlyRate: 50},
			{Name: "Bruno", HourlyRate: 40},
		}
		coordinators := []entities.Coordinator{
			{Name: "Carla", DailyRate: 200, Enabled: true},
			{Name: "Davi", DailyRate: 150, Enabled: false},
			{Name: "Eva", DailyRate: 100, Enabled: true},
		}

		got := CalculateStaffCosts(teachers, coordinators, 6, tf)

		if !got.TeacherCosts.Equal(decimal.NewFromInt(900 + 720)) {
			t.Fatalf("unexpected teacher costs: %s", got.TeacherCosts)
		}
		if !got.CoordinatorCosts.Equal(decimal.NewFromInt(1000 + 500)) {
			t.Fatalf("unexpected coordinator costs: %s", got.CoordinatorCosts)
		}
		if !got.Total.Equal(decimal.NewFromInt(3120)) {
			t.Fatalf("unexpected total: %s", got.Total)
		}

		want := []entities.CostItem{
			{Name: "Ana", Cost: 900},
			{Name: "Bruno", Cost: 720},
			{Name: "Carla", Cost: 1000},
			{Name: "Eva", Cost: 500},
		}
		if len(got.Breakdown) != len(want) {
			t.Fatalf("expected %d breakdown entries, got %+v", len(want), got.Breakdown)
		}
		for i := range want {
			if got.Breakdown[i] != want[i] {
				t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], got.Breakdown[i])
			}
		}
	})

	t.Run("no workdays leaves teachers out of the breakdown", func(t *testing.T) {
		got := CalculateStaffCosts(
			[]entities.Teacher{{Name: "Ana", HourlyRate: 50}},
			[]entities.Coordinator{{Name: "Carla", DailyRate: 200, Enabled: true}},
			6,
			TimeFrame{CalendarDays: 2, Nights: 1},
		)
		if !got.TeacherCosts.IsZero() {
			t.Fatalf("expected zero teacher costs, got %s", got.TeacherCosts)
		}
		if len(got.Breakdown) != 1 || got.Breakdown[0].Name != "Carla" || got.Breakdown[0].Cost != 400 {
			t.Fatalf("unexpected breakdown: %+v", got.Breakdown)
		}
	})

	t.Run("unnamed staff get positional labels", func(t *testing.T) {
		got := CalculateStaffCosts(
			[]entities.Teacher{{HourlyRate: 10}},
			[]entities.Coordinator{{Name: "  ", DailyRate: 10, Enabled: true}},
			1,
			tf,
		)
		if got.Breakdown[0].Name != "Teacher 1" || got.Breakdown[1].Name != "Coordinator 1" {
			t.Fatalf("unexpected labels: %+v", got.Breakdown)
		}
	})

	t.Run("empty roster", func(t *testing.T) {
		got := CalculateStaffCosts(nil, nil, 6, tf)
		if !got.Total.IsZero() || len(got.Breakdown) != 0 || got.Breakdown == nil {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
