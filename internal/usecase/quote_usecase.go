package usecase

import (
	"context"
	"errors"
	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/domain/pricing"
	"seminar_billing/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidSeminarID        = errors.New("invalid seminar_id")
	ErrInvalidDateRange        = errors.New("departure date is before arrival date")
	ErrInvalidParticipants     = errors.New("participant count must not be negative")
	ErrInvalidTeachingHours    = errors.New("standard teaching hours must not be negative")
	ErrInvalidSellingPrice     = errors.New("selling price must not be negative")
	ErrQuoteNotEditable        = errors.New("quote is not a draft")
	ErrQuoteNotPriced          = errors.New("quote has no selling price")
	ErrInvalidStatusTransition = errors.New("invalid quote status transition")
)

// IQuoteUseCase exposes seminar quote operations.
//
// CalculateSummary is the stateless recompute used by the editor on every
// change; the other operations manage persisted drafts.
//
//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks
type IQuoteUseCase interface {
	CalculateSummary(ctx context.Context, state entities.QuoteState) (entities.QuoteSummary, error)
	CreateQuote(ctx context.Context, seminarID, title string, state entities.QuoteState) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListBySeminarID(ctx context.Context, seminarID string) ([]entities.Quote, error)
	UpdateState(ctx context.Context, id string, state entities.QuoteState) (entities.Quote, error)
	ApproveByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	GetSummary(ctx context.Context, id string) (entities.QuoteSummary, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	logger *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, logger *zap.Logger) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{repo: repo, logger: logger.Named("quote")}
}

// ValidateQuoteState rejects drafts the pricing engine would turn into
// nonsense (negative day counts or group sizes). Missing dates are fine: an
// undated draft simply prices at zero.
func ValidateQuoteState(state entities.QuoteState) error {
	if state.HasDates() && state.DepartureDate.Before(state.ArrivalDate) {
		return ErrInvalidDateRange
	}
	if state.ParticipantCount < 0 {
		return ErrInvalidParticipants
	}
	if state.StandardTeachingHours < 0 {
		return ErrInvalidTeachingHours
	}
	if state.ManualSellingPricePerParticipant < 0 {
		return ErrInvalidSellingPrice
	}
	return nil
}

func (u *QuoteUseCase) CalculateSummary(_ context.Context, state entities.QuoteState) (entities.QuoteSummary, error) {
	if err := ValidateQuoteState(state); err != nil {
		return entities.QuoteSummary{}, err
	}
	return pricing.CalculateQuoteSummary(state), nil
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, seminarID, title string, state entities.QuoteState) (entities.Quote, error) {
	seminarID = strings.TrimSpace(seminarID)
	if seminarID == "" {
		return entities.Quote{}, ErrInvalidSeminarID
	}
	if err := ValidateQuoteState(state); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		SeminarID: seminarID,
		Title:     strings.TrimSpace(title),
		State:     state,
		Status:    entities.QuoteStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("create failed", zap.String("seminar_id", seminarID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.logger.Info("quote created", zap.String("quote_id", created.ID), zap.String("seminar_id", seminarID))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListBySeminarID(ctx context.Context, seminarID string) ([]entities.Quote, error) {
	seminarID = strings.TrimSpace(seminarID)
	if seminarID == "" {
		return nil, ErrInvalidSeminarID
	}
	return u.repo.ListBySeminarID(ctx, seminarID)
}

func (u *QuoteUseCase) UpdateState(ctx context.Context, id string, state entities.QuoteState) (entities.Quote, error) {
	if err := ValidateQuoteState(state); err != nil {
		return entities.Quote{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !current.Editable() {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	updated, err := u.repo.UpdateState(ctx, current.ID, state)
	if err != nil {
		u.logger.Error("update state failed", zap.String("quote_id", current.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Lost a race with a status change or a delete.
		return entities.Quote{}, ErrQuoteNotEditable
	}
	return updated, nil
}

func (u *QuoteUseCase) ApproveByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled)
}

// Drafts may be approved, rejected or cancelled; an approved quote may still
// be cancelled. Everything else is final.
func allowedTransition(from, to entities.QuoteStatus) bool {
	switch from {
	case entities.QuoteStatusDraft:
		return to == entities.QuoteStatusApproved || to == entities.QuoteStatusRejected || to == entities.QuoteStatusCancelled
	case entities.QuoteStatusApproved:
		return to == entities.QuoteStatusCancelled
	}
	return false
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !allowedTransition(current.Status, status) {
		return entities.Quote{}, ErrInvalidStatusTransition
	}
	if status == entities.QuoteStatusApproved && current.State.ManualSellingPricePerParticipant <= 0 {
		return entities.Quote{}, ErrQuoteNotPriced
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, status)
	if err != nil {
		u.logger.Error("status update failed", zap.String("quote_id", current.ID), zap.String("status", string(status)), zap.Error(err))
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("quote status changed",
		zap.String("quote_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	u.logger.Info("quote deleted", zap.String("quote_id", id))
	return nil
}

func (u *QuoteUseCase) GetSummary(ctx context.Context, id string) (entities.QuoteSummary, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSummary{}, err
	}
	return pricing.CalculateQuoteSummary(q.State), nil
}
