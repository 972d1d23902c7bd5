package pricing

import (
	"fmt"
	"strings"

	"seminar_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// StaffCosts is the fixed-cost stream of a quote.
type StaffCosts struct {
	TeacherCosts     decimal.Decimal
	CoordinatorCosts decimal.Decimal
	Total            decimal.Decimal
	// Teachers first, then coordinators, both in input order. Zero-cost
	// entries are left out.
	Breakdown []entities.CostItem
}

func CalculateTeacherCost(t entities.Teacher, standardTeachingHours float64, tf TimeFrame) decimal.Decimal {
	return decimal.NewFromFloat(t.HourlyRate).
		Mul(decimal.NewFromFloat(standardTeachingHours)).
		Mul(decimal.NewFromInt(int64(tf.Workdays)))
}

func CalculateCoordinatorCost(c entities.Coordinator, tf TimeFrame) decimal.Decimal {
	if !c.Enabled {
		return decimal.Zero
	}
	return decimal.NewFromFloat(c.DailyRate).Mul(decimal.NewFromInt(int64(tf.CalendarDays)))
}

func CalculateStaffCosts(teachers []entities.Teacher, coordinators []entities.Coordinator, standardTeachingHours float64, tf TimeFrame) StaffCosts {
	out := StaffCosts{
		TeacherCosts:     decimal.Zero,
		CoordinatorCosts: decimal.Zero,
		Breakdown:        make([]entities.CostItem, 0, len(teachers)+len(coordinators)),
	}

	for i, t := range teachers {
		cost := CalculateTeacherCost(t, standardTeachingHours, tf)
		out.TeacherCosts = out.TeacherCosts.Add(cost)
		out.Breakdown = appendCostItem(out.Breakdown, staffLabel(t.Name, "Teacher", i), cost)
	}
	for i, c := range coordinators {
		cost := CalculateCoordinatorCost(c, tf)
		out.CoordinatorCosts = out.CoordinatorCosts.Add(cost)
		out.Breakdown = appendCostItem(out.Breakdown, staffLabel(c.Name, "Coordinator", i), cost)
	}

	out.Total = out.TeacherCosts.Add(out.CoordinatorCosts)
	return out
}

func staffLabel(name, role string, idx int) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return fmt.Sprintf("%s %d", role, idx+1)
}

func appendCostItem(items []entities.CostItem, name string, cost decimal.Decimal) []entities.CostItem {
	if cost.IsZero() {
		return items
	}
	return append(items, entities.CostItem{Name: name, Cost: cost.InexactFloat64()})
}
