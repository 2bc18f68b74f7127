package request

// ClientRequest is the POST /api/clients payload.
type ClientRequest struct {
	Name          string `json:"name" binding:"required"`
	Cuit          string `json:"cuit"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
}
