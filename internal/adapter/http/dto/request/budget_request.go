package request

// BudgetItemRequest is one quote line. Quantity and unit price arrive as
// plain JSON numbers; they are converted to decimals at the use-case
// boundary.
type BudgetItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// BudgetRequest is the POST /api/budgets payload: line items plus the
// optional captured signature and photo as embedded data URLs.
type BudgetRequest struct {
	ClientID       string              `json:"client_id" binding:"required"`
	TaskID         string              `json:"task_id"`
	Date           string              `json:"date"`
	ValidityDays   int                 `json:"validity_days"`
	Items          []BudgetItemRequest `json:"items"`
	SignatureData  string              `json:"signature_data"`
	PhotoURL       string              `json:"photo_url"`
	TechnicianName string              `json:"technician_name"`
}
