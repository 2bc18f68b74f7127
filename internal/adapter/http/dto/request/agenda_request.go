package request

// AgendaEventRequest is the POST /api/agenda payload. Times are the local
// datetime strings produced by the calendar form.
type AgendaEventRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Type        string `json:"type"`
}
