package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider-side outcome of a charge attempt.
type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// BudgetPayment records a Mercado Pago charge against an emitted budget,
// persisted in the "Pagos" sheet.
//
// Storage model (tabular store, positional):
//   - columns: id, budget_number, date, status, amount, provider_payment_id,
//     provider_response
//
// The amount always comes from the stored budget total, never from the
// caller. ProviderResponse keeps the raw gateway payload for reconciliation.
type BudgetPayment struct {
	ID                string          `json:"id"`
	BudgetNumber      string          `json:"budget_number"`
	Date              string          `json:"date"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}
