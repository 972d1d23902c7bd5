package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/domain/pricing"
	"seminar_billing/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrQuotePaymentNotFound       = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidPaymentID           = errors.New("invalid payment id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrQuoteNotApproved           = errors.New("quote not approved")
	ErrPaymentGatewayNotSet       = errors.New("payment gateway not configured")
	ErrQuoteRepositoryNotSet      = errors.New("quote repository not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// PaymentOptions tunes how payloads are prepared for the provider.
type PaymentOptions struct {
	// TestPayerEmail fills payer.email when the caller sent no payer
	// identity; only meant for sandbox credentials.
	TestPayerEmail string
}

// IQuotePaymentUseCase collects payments against approved quotes.
//
//go:generate mockgen -source=quote_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_payment_usecase.go -package=mocks
type IQuotePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
	logger    *zap.Logger
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(
	repo interfaces.IQuotePaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	logger *zap.Logger,
) *QuotePaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotePaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		opts:      opts,
		logger:    logger.Named("payment"),
	}
}

// CreateAndApprove charges the quote's total revenue through the gateway and
// records the approved payment. The amount always comes from the recomputed
// quote, never from the caller's payload.
func (u *QuotePaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	log := u.logger.With(zap.String("quote_id", quoteID))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(providerPayload)))

	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		log.Warn("invalid provider payload")
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, ErrPaymentGatewayNotSet
	}
	if u.quoteRepo == nil {
		return entities.QuotePayment{}, ErrQuoteRepositoryNotSet
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error("failed loading quote", zap.Error(err))
		return entities.QuotePayment{}, err
	}
	if quote.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusApproved {
		log.Warn("quote not approved", zap.String("status", string(quote.Status)))
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}

	summary := pricing.CalculateQuoteSummary(quote.State)
	if summary.TotalRevenue <= 0 {
		return entities.QuotePayment{}, ErrQuoteNotPriced
	}

	payload, err := u.preparePayload(quote, summary.TotalRevenue, providerPayload)
	if err != nil {
		log.Warn("payload rejected", zap.Error(err))
		return entities.QuotePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return entities.QuotePayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.QuotePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.QuotePayment{}, err
	}
	log.Info("payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quote.ID,
		Amount:             summary.TotalRevenue,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotePayment{}, err
	}
	log.Info("create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

// preparePayload links the provider request to the quote and forces the
// amount.
func (u *QuotePaymentUseCase) preparePayload(quote entities.Quote, amount float64, raw json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, ErrInvalidProviderPayload
	}
	if !hasNonEmptyString(req, "payment_method_id") {
		return nil, ErrInvalidProviderPayload
	}

	u.ensurePayer(req)
	if !hasPayer(req) {
		return nil, ErrInvalidProviderPayload
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = quote.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = quoteDescription(quote)
	}
	req["transaction_amount"] = amount

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func quoteDescription(q entities.Quote) string {
	if q.Title != "" {
		return fmt.Sprintf("Seminar quote %s (%s)", q.Title, q.ID)
	}
	return fmt.Sprintf("Seminar quote %s", q.ID)
}

func (u *QuotePaymentUseCase) ensurePayer(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.opts.TestPayerEmail != "" {
		payer["email"] = u.opts.TestPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}
