package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "seminar_billing/internal/adapter/http/dto/response"
	"seminar_billing/internal/usecase"
	"seminar_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotePaymentHandler handles HTTP requests for quote payments.
type QuotePaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

// NewQuotePaymentHandler builds the handler. With mockMode on, an unreadable
// body falls back to an empty provider payload instead of a 400.
func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool, logger *zap.Logger) *QuotePaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotePaymentHandler{usecase: uc, mockMode: mockMode, logger: logger.Named("payment_handler")}
}

// CreatePaymentByQuoteID charges an approved quote.
//
//	@Summary	Pay an approved quote
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		quote_id	path		string								true	"Quote ID"
//	@Param		payload		body		request.QuotePaymentCreateRequest	false	"Provider payload"
//	@Success	200			{object}	response.QuotePaymentResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Router		/payments/{quote_id} [post]
func (h *QuotePaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log := h.logger.With(zap.String("quote_id", quoteID))
	log.Debug("create start")

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn("invalid payload", zap.Error(err))
			respondError(c, errInvalidRequest)
			return
		}
		log.Warn("payload invalid in mock mode; using empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Warn("create failed", zap.Error(err))
		respondError(c, mapQuotePaymentError(err))
		return
	}
	log.Info("create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPaymentByQuoteID returns the latest payment of a quote.
//
//	@Summary	Latest payment of a quote
//	@Tags		payments
//	@Produce	json
//	@Param		quote_id	path		string	true	"Quote ID"
//	@Success	200			{object}	response.QuotePaymentResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/payments/{quote_id} [get]
func (h *QuotePaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		h.logger.Warn("get-by-quote failed", zap.String("quote_id", quoteID), zap.Error(err))
		respondError(c, mapQuotePaymentError(err))
		return
	}
	if len(payments) == 0 {
		respondError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// GetPaymentByID returns one payment by its own id.
//
//	@Summary	Get a payment
//	@Tags		payments
//	@Produce	json
//	@Param		payment_id	path		string	true	"Payment ID"
//	@Success	200			{object}	response.QuotePaymentResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/payments/by-id/{payment_id} [get]
func (h *QuotePaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID := c.Param("payment_id")

	p, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		h.logger.Debug("get-by-id failed", zap.String("payment_id", paymentID), zap.Error(err))
		respondError(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(p))
}

// readProviderPayload returns the provider payload from the body, unwrapping
// the optional {"provider_payload": ...} envelope. An empty body is {}.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			w := strings.TrimSpace(string(wrapped))
			if w == "" || w == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
