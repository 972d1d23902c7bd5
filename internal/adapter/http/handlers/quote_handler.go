package handlers

import (
	"context"
	"net/http"

	request "seminar_billing/internal/adapter/http/dto/request"
	response "seminar_billing/internal/adapter/http/dto/response"
	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for seminar quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, logger: logger.Named("quote_handler")}
}

// CalculateSummary prices an unsaved quote state.
//
//	@Summary	Calculate a quote summary
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		state	body		entities.QuoteState	true	"Quote state"
//	@Success	200		{object}	entities.QuoteSummary
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/quotes/calculate [post]
func (h *QuoteHandler) CalculateSummary(c *gin.Context) {
	var state entities.QuoteState
	if err := c.ShouldBindJSON(&state); err != nil {
		h.logger.Debug("invalid calculate payload", zap.Error(err))
		respondError(c, errInvalidQuotePayload)
		return
	}

	summary, err := h.usecase.CalculateSummary(c.Request.Context(), state)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateQuote stores a new draft and returns it with its summary.
//
//	@Summary	Create a quote draft
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		quote	body		request.CreateQuoteRequest	true	"Quote draft"
//	@Success	201		{object}	response.QuoteWithSummaryResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("invalid create payload", zap.Error(err))
		respondError(c, errInvalidQuotePayload)
		return
	}

	seminarID := payload.ResolveSeminarID()
	if seminarID == "" {
		respondError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), seminarID, payload.Title, payload.State)
	if err != nil {
		h.respondQuoteError(c, "create", err)
		return
	}
	h.respondWithSummary(c, http.StatusCreated, quote)
}

// GetQuote returns a quote with its summary recomputed from the stored state.
//
//	@Summary	Get a quote
//	@Tags		quotes
//	@Produce	json
//	@Param		id	path		string	true	"Quote ID"
//	@Success	200	{object}	response.QuoteWithSummaryResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondQuoteError(c, "get", err)
		return
	}
	h.respondWithSummary(c, http.StatusOK, quote)
}

// GetQuoteSummary recomputes the summary of a stored quote.
//
//	@Summary	Get the summary of a stored quote
//	@Tags		quotes
//	@Produce	json
//	@Param		id	path		string	true	"Quote ID"
//	@Success	200	{object}	entities.QuoteSummary
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/quotes/{id}/summary [get]
func (h *QuoteHandler) GetQuoteSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondQuoteError(c, "summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListSeminarQuotes lists a seminar's quotes, oldest first.
//
//	@Summary	List the quotes of a seminar
//	@Tags		quotes
//	@Produce	json
//	@Param		seminar_id	path	string	true	"Seminar ID"
//	@Success	200			{array}	response.QuoteResponse
//	@Router		/seminars/{seminar_id}/quotes [get]
func (h *QuoteHandler) ListSeminarQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListBySeminarID(c.Request.Context(), c.Param("seminar_id"))
	if err != nil {
		h.respondQuoteError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// UpdateQuoteState replaces the state of a draft.
//
//	@Summary	Update a quote draft
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Quote ID"
//	@Param		state	body		request.UpdateQuoteStateRequest	true	"New state"
//	@Success	200		{object}	response.QuoteWithSummaryResponse
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/quotes/{id}/state [put]
func (h *QuoteHandler) UpdateQuoteState(c *gin.Context) {
	var payload request.UpdateQuoteStateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("invalid update payload", zap.Error(err))
		respondError(c, errInvalidQuotePayload)
		return
	}

	quote, err := h.usecase.UpdateState(c.Request.Context(), c.Param("id"), payload.State)
	if err != nil {
		h.respondQuoteError(c, "update", err)
		return
	}
	h.respondWithSummary(c, http.StatusOK, quote)
}

// DeleteQuote removes a quote whatever its status.
//
//	@Summary	Delete a quote
//	@Tags		quotes
//	@Param		id	path	string	true	"Quote ID"
//	@Success	204
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondQuoteError(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveQuote freezes a priced draft.
//
//	@Summary	Approve a quote
//	@Tags		quotes
//	@Produce	json
//	@Param		id	path		string	true	"Quote ID"
//	@Success	200	{object}	response.QuoteResponse
//	@Failure	409	{object}	pkg.HTTPError
//	@Failure	422	{object}	pkg.HTTPError
//	@Router		/quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, "approve", h.usecase.ApproveByID)
}

// RejectQuote closes a draft the customer turned down.
//
//	@Summary	Reject a quote
//	@Tags		quotes
//	@Produce	json
//	@Param		id	path		string	true	"Quote ID"
//	@Success	200	{object}	response.QuoteResponse
//	@Failure	409	{object}	pkg.HTTPError
//	@Router		/quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, "reject", h.usecase.RejectByID)
}

// CancelQuote withdraws a draft or an approved quote.
//
//	@Summary	Cancel a quote
//	@Tags		quotes
//	@Produce	json
//	@Param		id	path		string	true	"Quote ID"
//	@Success	200	{object}	response.QuoteResponse
//	@Failure	409	{object}	pkg.HTTPError
//	@Router		/quotes/{id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, "cancel", h.usecase.CancelByID)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondQuoteError(c, action, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) respondWithSummary(c *gin.Context, status int, quote entities.Quote) {
	summary, err := h.usecase.CalculateSummary(c.Request.Context(), quote.State)
	if err != nil {
		h.respondQuoteError(c, "summary", err)
		return
	}
	c.JSON(status, response.FromQuoteWithSummary(quote, summary))
}

func (h *QuoteHandler) respondQuoteError(c *gin.Context, action string, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error(action+" failed", zap.String("quote_id", c.Param("id")), zap.Error(err))
	}
	respondError(c, appErr)
}
