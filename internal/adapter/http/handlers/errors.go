package handlers

import (
	"errors"
	"net/http"

	"seminar_billing/internal/usecase"
	"seminar_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidSeminarID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Departure date is before arrival date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidParticipants), errors.Is(err, usecase.ErrInvalidTeachingHours), errors.Is(err, usecase.ErrInvalidSellingPrice):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Only draft quotes can be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quote status cannot change this way", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPriced):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PRICED", "Quote has no selling price", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPriced):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PRICED", "Quote has no selling price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
