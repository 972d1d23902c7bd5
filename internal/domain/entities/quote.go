package entities

import "time"

// QuoteStatus represents the lifecycle of a seminar quote.
//
// Drafts are freely edited by the operator. Once approved the pricing is
// frozen and payments may be taken against it.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a seminar quote draft persisted in the document store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (seminar_id-index): seminar_id
//
// Storage model (MongoDB):
//   - _id: id
//   - index on seminar_id
type Quote struct {
	ID        string      `json:"id"`
	SeminarID string      `json:"seminar_id"`
	Title     string      `json:"title"`
	State     QuoteState  `json:"state"`
	Status    QuoteStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (q Quote) Editable() bool {
	return q.Status == QuoteStatusDraft
}
