package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/infrastructure/config"
	mock_interfaces "seminar_billing/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mock_interfaces.MockIQuoteRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	paymentsRepo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	repos := Repositories{Quotes: quotes, Payments: paymentsRepo}
	return NewRouter(repos, gateway, &config.Config{}, zap.NewNop()), quotes
}

func TestNewRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_CalculateNeedsNoStorage(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"arrival_date":"2024-03-07","departure_date":"2024-03-07","participant_count":2,
		"services":[{"name":"Venue","enabled":true,"cost_price":50,"time_basis":"one_off","is_default":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var s entities.QuoteSummary
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if s.ServiceCosts != 100 || s.TotalInternalCost != 113 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestNewRouter_SeminarQuotes(t *testing.T) {
	r, quotes := newTestRouter(t)
	quotes.EXPECT().ListBySeminarID(gomock.Any(), "sem-1").Return([]entities.Quote{{ID: "q-1", SeminarID: "sem-1"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/seminars/sem-1/quotes", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_RecoversFromPanics(t *testing.T) {
	r, quotes := newTestRouter(t)
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").DoAndReturn(func(_ any, _ string) (entities.Quote, error) {
		panic("storage exploded")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestNewRouter_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repos := Repositories{
		Quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		Payments: mock_interfaces.NewMockIQuotePaymentRepository(ctrl),
	}
	r := NewRouter(repos, nil, &config.Config{RateLimitPerMinute: 1, RateLimitBurst: 1}, zap.NewNop())

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}
