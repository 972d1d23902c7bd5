package pricing

import (
	"testing"

	"seminar_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCalculateServiceCost(t *testing.T) {
	tf := TimeFrame{CalendarDays: 5, Nights: 4, Workdays: 3}

	cases := []struct {
		name string
		svc  entities.QuoteService
		want string
	}{
		{
			name: "disabled",
			svc:  entities.QuoteService{Enabled: false, CostPrice: 100, TimeBasis: entities.TimeBasisPerDay, IsDefault: true},
			want: "0",
		},
		{
			name: "one off",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 250, TimeBasis: entities.TimeBasisOneOff, IsDefault: true},
			want: "2500",
		},
		{
			name: "per day",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 100, TimeBasis: entities.TimeBasisPerDay, IsDefault: true},
			want: "5000",
		},
		{
			name: "per night",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 80, TimeBasis: entities.TimeBasisPerNight, IsDefault: true},
			want: "3200",
		},
		{
			name: "per workday",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 12.5, TimeBasis: entities.TimeBasisPerWorkday, IsDefault: true},
			want: "375",
		},
		{
			name: "unknown basis billed once",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 10, TimeBasis: "per_fortnight", IsDefault: true},
			want: "100",
		},
		{
			name: "default ignores override",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 10, TimeBasis: entities.TimeBasisOneOff, IsDefault: true, ParticipantOverride: entities.IntPtr(3)},
			want: "100",
		},
		{
			name: "optional with override",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 10, TimeBasis: entities.TimeBasisPerDay, ParticipantOverride: entities.IntPtr(3)},
			want: "150",
		},
		{
			name: "optional with zero override",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 10, TimeBasis: entities.TimeBasisPerDay, ParticipantOverride: entities.IntPtr(0)},
			want: "0",
		},
		{
			name: "optional without override uses group",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 10, TimeBasis: entities.TimeBasisPerDay},
			want: "500",
		},
		{
			name: "fractional price stays exact",
			svc:  entities.QuoteService{Enabled: true, CostPrice: 0.1, TimeBasis: entities.TimeBasisPerNight, IsDefault: true},
			want: "4",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateServiceCost(tc.svc, tf, 10)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCalculateServiceCost_OverrideScalesLinearly(t *testing.T) {
	tf := TimeFrame{CalendarDays: 3, Nights: 2, Workdays: 3}
	base := entities.QuoteService{Enabled: true, CostPrice: 42, TimeBasis: entities.TimeBasisPerNight}

	for _, participants := range []int{0, 1, 25} {
		unit := base
		unit.ParticipantOverride = entities.IntPtr(1)
		perHead := CalculateServiceCost(unit, tf, participants)

		for k := 0; k <= 12; k++ {
			svc := base
			svc.ParticipantOverride = entities.IntPtr(k)
			got := CalculateServiceCost(svc, tf, participants)
			want := perHead.Mul(decimal.NewFromInt(int64(k)))
			if !got.Equal(want) {
				t.Fatalf("participants=%d k=%d: expected %s, got %s", participants, k, want, got)
			}
		}
	}
}

func TestCalculateServiceCost_Deterministic(t *testing.T) {
	svc := entities.QuoteService{Enabled: true, CostPrice: 19.99, TimeBasis: entities.TimeBasisPerDay, IsDefault: true}
	tf := TimeFrame{CalendarDays: 7, Nights: 6, Workdays: 5}

	first := CalculateServiceCost(svc, tf, 13)
	for i := 0; i < 50; i++ {
		if got := CalculateServiceCost(svc, tf, 13); !got.Equal(first) {
			t.Fatalf("run %d: expected %s, got %s", i, first, got)
		}
	}
}
