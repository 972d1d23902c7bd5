package response

import (
	"encoding/json"
	"testing"
	"time"

	"seminar_billing/internal/domain/entities"
)

func TestFromQuotePayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.QuotePayment{
		ID:                 "pay-1",
		QuoteID:            "q-1",
		Amount:             10000,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromQuotePayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuoteID != "q-1" || res.Status != "approved" || res.Amount != 10000 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
}
