package entities

// Client is a serviced customer persisted in the "Clientes" sheet.
//
// Storage model (tabular store, positional):
//   - columns: id, name, cuit, address, phone, contact_person, created_at
//
// Clients are created once and never mutated or deleted by this service.
// Dates travel as ISO date strings (YYYY-MM-DD), the sheet's native
// representation.
type Client struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Cuit          string `json:"cuit,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	CreatedAt     string `json:"created_at"`
}
