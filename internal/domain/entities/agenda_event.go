package entities

// AgendaEventType classifies a scheduled visit.
type AgendaEventType string

const (
	AgendaEventVisita        AgendaEventType = "Visita"
	AgendaEventMantenimiento AgendaEventType = "Mantenimiento"
)

func (t AgendaEventType) Valid() bool {
	return t == AgendaEventVisita || t == AgendaEventMantenimiento
}

// AgendaEvent is a scheduled visit persisted in the "Agenda" sheet.
//
// Storage model (tabular store, positional):
//   - columns: id, client_id, title, description, start_time, end_time, type
//
// Events are immutable and never deleted. Times travel as the local
// datetime strings produced by the calendar UI.
type AgendaEvent struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  *string         `json:"client_name,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	Type        AgendaEventType `json:"type"`
}
