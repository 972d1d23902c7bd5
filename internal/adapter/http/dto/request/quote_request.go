package request

import (
	"strings"

	"seminar_billing/internal/domain/entities"
)

// CreateQuoteRequest opens a new draft for a seminar.
//
// The state accepts the editor's document as-is: services, teachers and
// coordinators may be sent either as arrays or as keyed objects.
type CreateQuoteRequest struct {
	SeminarID string              `json:"seminar_id" binding:"required"`
	Title     string              `json:"title"`
	State     entities.QuoteState `json:"state"`
}

func (r CreateQuoteRequest) ResolveSeminarID() string {
	return strings.TrimSpace(r.SeminarID)
}

// UpdateQuoteStateRequest replaces the state of a draft.
type UpdateQuoteStateRequest struct {
	State entities.QuoteState `json:"state"`
}
