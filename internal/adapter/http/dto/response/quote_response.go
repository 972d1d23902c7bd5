package response

import (
	"time"

	"seminar_billing/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID   string              `json:"quote_id"`
	ID        string              `json:"id"`
	SeminarID string              `json:"seminar_id"`
	Title     string              `json:"title"`
	Status    string              `json:"status"`
	State     entities.QuoteState `json:"state"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// QuoteWithSummaryResponse is a quote together with its freshly computed
// summary.
type QuoteWithSummaryResponse struct {
	QuoteResponse
	Summary entities.QuoteSummary `json:"summary"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:   q.ID,
		ID:        q.ID,
		SeminarID: q.SeminarID,
		Title:     q.Title,
		Status:    string(q.Status),
		State:     q.State,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuoteWithSummary(q entities.Quote, s entities.QuoteSummary) QuoteWithSummaryResponse {
	return QuoteWithSummaryResponse{QuoteResponse: FromQuote(q), Summary: s}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
