package entities

// TaskStatus is the work-order state machine: Pendiente -> En Proceso -> Finalizado.
//
// The stored values are the user-facing Spanish labels; they are part of the
// on-disk format and of the API contract with the UI.
type TaskStatus string

const (
	TaskStatusPendiente  TaskStatus = "Pendiente"
	TaskStatusEnProceso  TaskStatus = "En Proceso"
	TaskStatusFinalizado TaskStatus = "Finalizado"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPendiente, TaskStatusEnProceso, TaskStatusFinalizado:
		return true
	}
	return false
}

// rank orders statuses for the strict transition policy.
func (s TaskStatus) rank() int {
	switch s {
	case TaskStatusPendiente:
		return 0
	case TaskStatusEnProceso:
		return 1
	case TaskStatusFinalizado:
		return 2
	}
	return -1
}

// StepsFrom returns how many forward steps separate from -> s.
// Negative means a backward move.
func (s TaskStatus) StepsFrom(from TaskStatus) int {
	return s.rank() - from.rank()
}

type TaskPriority string

const (
	TaskPriorityBaja  TaskPriority = "Baja"
	TaskPriorityMedia TaskPriority = "Media"
	TaskPriorityAlta  TaskPriority = "Alta"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityBaja, TaskPriorityMedia, TaskPriorityAlta:
		return true
	}
	return false
}

// Task is a work order persisted in the "Tareas" sheet.
//
// Storage model (tabular store, positional):
//   - columns: id, client_id, description, status, priority, technician_name,
//     created_at, finished_at
//   - the trailing finished_at column was added after the original seven;
//     rows written before it exist are shorter and read back empty
//
// The sheet is append-only: a status patch appends a full revision row and
// readers keep the newest revision per id.
type Task struct {
	ID             string       `json:"id"`
	ClientID       string       `json:"client_id"`
	ClientName     *string      `json:"client_name,omitempty"`
	Description    string       `json:"description"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	TechnicianName string       `json:"technician_name,omitempty"`
	CreatedAt      string       `json:"created_at"`
	FinishedAt     string       `json:"finished_at,omitempty"`
}
