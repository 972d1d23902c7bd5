package entities

// CostItem is one labelled line of a breakdown.
type CostItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// QuoteSummary is the derived financial picture of a QuoteState. It is
// recomputed from scratch on every edit and never persisted as a source of
// truth.
type QuoteSummary struct {
	CalendarDays int `json:"calendar_days"`
	Nights       int `json:"nights"`
	Workdays     int `json:"workdays"`

	ServiceBreakdown    []CostItem `json:"service_breakdown"`
	StaffBreakdown      []CostItem `json:"staff_breakdown"`
	OtherCostsBreakdown []CostItem `json:"other_costs_breakdown"`

	ServiceCosts        float64 `json:"service_costs"`
	TeacherCosts        float64 `json:"teacher_costs"`
	CoordinatorCosts    float64 `json:"coordinator_costs"`
	TotalStaffCosts     float64 `json:"total_staff_costs"`
	ContingencyExpenses float64 `json:"contingency_expenses"`
	BankingFees         float64 `json:"banking_fees"`
	TotalOtherCosts     float64 `json:"total_other_costs"`
	BaseCost            float64 `json:"base_cost"`
	TotalInternalCost   float64 `json:"total_internal_cost"`
	CostPerParticipant  float64 `json:"cost_per_participant"`

	ManualSellingPricePerParticipant float64 `json:"manual_selling_price_per_participant"`
	TotalRevenue                     float64 `json:"total_revenue"`
	NetProfit                        float64 `json:"net_profit"`
	ProfitMarginPercentage           float64 `json:"profit_margin_percentage"`
}
