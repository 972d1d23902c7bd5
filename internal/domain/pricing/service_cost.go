package pricing

import (
	"seminar_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CalculateServiceCost returns what one service line costs for the stay:
// unit cost × day multiplier × participants. Disabled services cost nothing.
func CalculateServiceCost(svc entities.QuoteService, tf TimeFrame, participantCount int) decimal.Decimal {
	if !svc.Enabled {
		return decimal.Zero
	}

	multiplier := timeBasisMultiplier(svc.TimeBasis, tf)
	participants := effectiveParticipants(svc, participantCount)

	return decimal.NewFromFloat(svc.CostPrice).
		Mul(decimal.NewFromInt(int64(multiplier))).
		Mul(decimal.NewFromInt(int64(participants)))
}

// Unknown bases are billed once, like OneOff.
func timeBasisMultiplier(basis entities.TimeBasis, tf TimeFrame) int {
	switch basis {
	case entities.TimeBasisPerDay:
		return tf.CalendarDays
	case entities.TimeBasisPerNight:
		return tf.Nights
	case entities.TimeBasisPerWorkday:
		return tf.Workdays
	default:
		return 1
	}
}

func effectiveParticipants(svc entities.QuoteService, participantCount int) int {
	if svc.IsDefault || svc.ParticipantOverride == nil {
		return participantCount
	}
	return *svc.ParticipantOverride
}
