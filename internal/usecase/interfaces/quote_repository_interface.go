package interfaces

import (
	"context"
	"seminar_billing/internal/domain/entities"
)

// IQuoteRepository abstracts document-store persistence for Quote drafts.
//
// Not-found is reported as a zero-value Quote (empty ID) and a nil error;
// use cases turn that into their own sentinel.
//
//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository.go -package=mock_interfaces
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListBySeminarID(ctx context.Context, seminarID string) ([]entities.Quote, error)
	UpdateState(ctx context.Context, id string, state entities.QuoteState) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
