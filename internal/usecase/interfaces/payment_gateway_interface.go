package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The service uses it to charge a budget total and keeps the raw provider
// response for reconciliation. The gateway is optional infrastructure: an
// unconfigured gateway must surface as a service-unavailable failure at
// call time, never as a startup crash.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
