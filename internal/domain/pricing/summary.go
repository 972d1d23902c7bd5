package pricing

import (
	"strings"

	"seminar_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Overhead surcharges, both applied to the base cost.
var (
	ContingencyRate = decimal.RequireFromString("0.10")
	BankingFeeRate  = decimal.RequireFromString("0.03")
)

const (
	contingencyLabel = "Contingency (10%)"
	bankingFeesLabel = "Banking fees (3%)"
)

var hundred = decimal.NewFromInt(100)

// CalculateQuoteSummary is the recompute entry point: callers invoke it after
// every change to the draft. It never fails; a draft without both dates
// yields an all-zero summary that only echoes the manual selling price.
func CalculateQuoteSummary(state entities.QuoteState) entities.QuoteSummary {
	if !state.HasDates() {
		return emptySummary(state.ManualSellingPricePerParticipant)
	}

	services := state.Services.Items()
	teachers := state.Teachers.Items()
	coordinators := state.Coordinators.Items()

	tf := CalculateTimeFrame(state.ArrivalDate, state.DepartureDate, state.ActiveWorkdays)

	serviceCosts := decimal.Zero
	serviceBreakdown := make([]entities.CostItem, 0, len(services))
	for i, svc := range services {
		if !svc.Enabled {
			continue
		}
		cost := CalculateServiceCost(svc, tf, state.ParticipantCount)
		serviceCosts = serviceCosts.Add(cost)
		serviceBreakdown = appendCostItem(serviceBreakdown, serviceLabel(svc.Name, i), cost)
	}

	staff := CalculateStaffCosts(teachers, coordinators, state.StandardTeachingHours, tf)

	baseCost := serviceCosts.Add(staff.Total)
	contingency := baseCost.Mul(ContingencyRate)
	bankingFees := baseCost.Mul(BankingFeeRate)

	otherBreakdown := make([]entities.CostItem, 0, 2)
	if contingency.IsPositive() {
		otherBreakdown = append(otherBreakdown, entities.CostItem{Name: contingencyLabel, Cost: contingency.InexactFloat64()})
	}
	if bankingFees.IsPositive() {
		otherBreakdown = append(otherBreakdown, entities.CostItem{Name: bankingFeesLabel, Cost: bankingFees.InexactFloat64()})
	}
	totalOther := contingency.Add(bankingFees)
	totalInternal := baseCost.Add(totalOther)

	participants := decimal.NewFromInt(int64(state.ParticipantCount))
	costPerParticipant := decimal.Zero
	if state.ParticipantCount > 0 {
		costPerParticipant = totalInternal.Div(participants)
	}

	price := decimal.NewFromFloat(state.ManualSellingPricePerParticipant)
	revenue := price.Mul(participants)
	// An unpriced draft reports no profit rather than a loss of its full cost.
	netProfit := decimal.Zero
	if !price.IsZero() {
		netProfit = revenue.Sub(totalInternal)
	}
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = netProfit.Div(revenue).Mul(hundred)
	}

	return entities.QuoteSummary{
		CalendarDays: tf.CalendarDays,
		Nights:       tf.Nights,
		Workdays:     tf.Workdays,

		ServiceBreakdown:    serviceBreakdown,
		StaffBreakdown:      staff.Breakdown,
		OtherCostsBreakdown: otherBreakdown,

		ServiceCosts:        serviceCosts.InexactFloat64(),
		TeacherCosts:        staff.TeacherCosts.InexactFloat64(),
		CoordinatorCosts:    staff.CoordinatorCosts.InexactFloat64(),
		TotalStaffCosts:     staff.Total.InexactFloat64(),
		ContingencyExpenses: contingency.InexactFloat64(),
		BankingFees:         bankingFees.InexactFloat64(),
		TotalOtherCosts:     totalOther.InexactFloat64(),
		BaseCost:            baseCost.InexactFloat64(),
		TotalInternalCost:   totalInternal.InexactFloat64(),
		CostPerParticipant:  costPerParticipant.InexactFloat64(),

		ManualSellingPricePerParticipant: state.ManualSellingPricePerParticipant,
		TotalRevenue:                     revenue.InexactFloat64(),
		NetProfit:                        netProfit.InexactFloat64(),
		ProfitMarginPercentage:           margin.InexactFloat64(),
	}
}

func emptySummary(manualPrice float64) entities.QuoteSummary {
	return entities.QuoteSummary{
		ServiceBreakdown:                 []entities.CostItem{},
		StaffBreakdown:                   []entities.CostItem{},
		OtherCostsBreakdown:              []entities.CostItem{},
		ManualSellingPricePerParticipant: manualPrice,
	}
}

func serviceLabel(name string, idx int) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return staffLabel("", "Service", idx)
}
