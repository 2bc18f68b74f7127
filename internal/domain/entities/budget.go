package entities

import "github.com/shopspring/decimal"

// BudgetItem is one line of a quote: description, quantity and unit price.
type BudgetItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// LineTotal is quantity x unit price, exact.
func (i BudgetItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Budget is a quote/remito persisted in the "Presupuestos" sheet.
//
// Storage model (tabular store, positional):
//   - columns: budget_number, client_id, date, subtotal, total,
//     technician_name, document_link, id, task_id, validity_days, items
//     (JSON), signature_data, photo_url, created_at
//   - the first seven columns are the original ledger layout and must never
//     be reordered; later columns were appended to the right
//
// Invariants:
//   - Total equals Subtotal equals the sum of line totals, computed once at
//     assembly time and never recomputed.
//   - BudgetNumber is the human-facing document number (ILI-XXXX), distinct
//     from the internal ID.
//
// Budgets are immutable once created.
type Budget struct {
	ID             string          `json:"id"`
	BudgetNumber   string          `json:"budget_number"`
	ClientID       string          `json:"client_id"`
	ClientName     *string         `json:"client_name,omitempty"`
	TaskID         string          `json:"task_id,omitempty"`
	Date           string          `json:"date"`
	ValidityDays   int             `json:"validity_days"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	Items          []BudgetItem    `json:"items,omitempty"`
	SignatureData  string          `json:"signature_data,omitempty"`
	PhotoURL       string          `json:"photo_url,omitempty"`
	TechnicianName string          `json:"technician_name,omitempty"`
	DocumentLink   string          `json:"document_link,omitempty"`
	CreatedAt      string          `json:"created_at"`
}
