package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, nil)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, nil)
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v, %v", g, err)
		}
	})
}

func TestMercadoPagoGateway_MockCreatePayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, nil)

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10000,"external_reference":"q-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "mock-") || status != "approved" {
		t.Fatalf("unexpected id/status: %s/%s", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["id"] != id || resp["status_detail"] != "accredited" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if resp["external_reference"] != "q-1" || resp["transaction_amount"] != float64(10000) {
		t.Fatalf("request fields should be echoed: %v", resp)
	}
	if resp["date_created"] == nil || resp["date_approved"] == nil {
		t.Fatalf("expected dates: %v", resp)
	}
}

func TestMercadoPagoGateway_MockKeepsNonObjectPayload(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, nil)

	_, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`[1]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["request_payload_raw"] != "[1]" {
		t.Fatalf("expected raw payload to be kept, got %v", resp)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
