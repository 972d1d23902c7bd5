package entities

// TimeBasis selects which day count multiplies a service's unit cost.
type TimeBasis string

const (
	TimeBasisOneOff     TimeBasis = "one_off"
	TimeBasisPerDay     TimeBasis = "per_day"
	TimeBasisPerNight   TimeBasis = "per_night"
	TimeBasisPerWorkday TimeBasis = "per_workday"
)

func (b TimeBasis) Valid() bool {
	switch b {
	case TimeBasisOneOff, TimeBasisPerDay, TimeBasisPerNight, TimeBasisPerWorkday:
		return true
	}
	return false
}

// QuoteService is a billable service line of a seminar quote (catering,
// accommodation, venue, excursions...).
//
// Default services always scale with the whole group. Optional services use
// ParticipantOverride when it is set.
type QuoteService struct {
	Name                string    `json:"name"`
	Enabled             bool      `json:"enabled"`
	CostPrice           float64   `json:"cost_price"`
	TimeBasis           TimeBasis `json:"time_basis"`
	IsDefault           bool      `json:"is_default"`
	ParticipantOverride *int      `json:"participant_override,omitempty"`
}

// Teacher is paid per teaching hour, on active workdays only.
type Teacher struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
}

// Coordinator is paid per calendar day of the seminar, weekends included.
type Coordinator struct {
	Name      string  `json:"name"`
	DailyRate float64 `json:"daily_rate"`
	Enabled   bool    `json:"enabled"`
}

// QuoteState is the operator-edited input of a seminar quote.
type QuoteState struct {
	ArrivalDate                      Date                     `json:"arrival_date"`
	DepartureDate                    Date                     `json:"departure_date"`
	ActiveWorkdays                   WeekdaySet               `json:"active_workdays"`
	ParticipantCount                 int                      `json:"participant_count"`
	StandardTeachingHours            float64                  `json:"standard_teaching_hours"`
	Services                         Collection[QuoteService] `json:"services"`
	Teachers                         Collection[Teacher]      `json:"teachers"`
	Coordinators                     Collection[Coordinator]  `json:"coordinators"`
	ManualSellingPricePerParticipant float64                  `json:"manual_selling_price_per_participant"`
}

// HasDates reports whether both ends of the stay are set.
func (s QuoteState) HasDates() bool {
	return !s.ArrivalDate.IsZero() && !s.DepartureDate.IsZero()
}

// IntPtr is a small helper for ParticipantOverride literals.
func IntPtr(v int) *int { return &v }
