package request

// TaskRequest is the POST /api/tasks payload, shared by the staff UI and
// the client portal (the portal omits status/priority and gets defaults).
type TaskRequest struct {
	ClientID       string `json:"client_id" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	TechnicianName string `json:"technician_name"`
}

// TaskStatusPatchRequest is the PATCH /api/tasks/:id payload. The caller
// supplies the target status explicitly.
type TaskStatusPatchRequest struct {
	Status string `json:"status" binding:"required"`
}
