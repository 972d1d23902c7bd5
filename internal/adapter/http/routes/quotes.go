package routes

import (
	"net/http"

	"seminar_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathSeminars = "/seminars"
	PathPayments = "/payments"
	PathPing     = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/calculate", quoteHandler.CalculateSummary)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.GET("/:id/summary", quoteHandler.GetQuoteSummary)
		quotes.PUT("/:id/state", quoteHandler.UpdateQuoteState)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)
	}

	rg.GET(PathSeminars+"/:seminar_id/quotes", quoteHandler.ListSeminarQuotes)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
		payments.GET("/by-id/:payment_id", paymentHandler.GetPaymentByID)
	}
}
