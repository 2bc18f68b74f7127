package response

// CreatedResponse is the minimal body returned by creation endpoints; the
// UI refetches the list afterwards.
type CreatedResponse struct {
	ID string `json:"id"`
}

// BudgetCreatedResponse additionally carries the generated document number
// and the link to the rendered artifact.
type BudgetCreatedResponse struct {
	ID           string `json:"id"`
	BudgetNumber string `json:"budget_number"`
	DocumentLink string `json:"document_link"`
}
