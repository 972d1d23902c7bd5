package request

import "encoding/json"

// QuotePaymentCreateRequest is the optional envelope of the payment route.
//
// `provider_payload` is forwarded as raw JSON to support the varying Mercado
// Pago schemas. A bare provider payload (without the envelope) is accepted
// too.
type QuotePaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
