package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

var (
	ErrTaskDescriptionRequired = errors.New("task description required")
	ErrTaskClientRequired      = errors.New("task client required")
	ErrTaskClientNotFound      = errors.New("task client not found")
	ErrInvalidTaskStatus       = errors.New("invalid task status")
	ErrInvalidTaskPriority     = errors.New("invalid task priority")
	ErrTaskNotFound            = errors.New("task not found")
	ErrTaskIDCollision         = errors.New("task id collision")
	ErrInvalidTransition       = errors.New("invalid status transition")
)

// idRetries bounds fresh-id attempts on create.
const idRetries = 3

// TransitionPolicy decides whether out-of-order status moves are rejected.
//
// Observed production behavior accepts any target status (staff override),
// so that is the default; strict mode rejects backward moves and step
// skips. Kept configurable rather than hardcoding either answer.
type TransitionPolicy string

const (
	TransitionPermissive TransitionPolicy = "permissive"
	TransitionStrict     TransitionPolicy = "strict"
)

func TransitionPolicyFromEnv(v string) TransitionPolicy {
	if strings.EqualFold(strings.TrimSpace(v), string(TransitionStrict)) {
		return TransitionStrict
	}
	return TransitionPermissive
}

// ITaskUseCase exposes work-order operations.
//
// AdvanceStatus is the only mutation path: the caller supplies the target
// status explicitly, and the returned flag signals "offer budget generation
// for this task's client" exactly once, on the transition into Finalizado.
type ITaskUseCase interface {
	CreateTask(ctx context.Context, in CreateTaskInput) (entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	AdvanceStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.Task, bool, error)
}

type CreateTaskInput struct {
	ClientID       string
	Description    string
	Status         entities.TaskStatus
	Priority       entities.TaskPriority
	TechnicianName string
}

type TaskUseCase struct {
	repo    interfaces.ITaskRepository
	clients interfaces.IClientRepository
	ids     interfaces.IIdentifierSource
	policy  TransitionPolicy
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.ITaskRepository, clients interfaces.IClientRepository, ids interfaces.IIdentifierSource, policy TransitionPolicy) *TaskUseCase {
	return &TaskUseCase{repo: repo, clients: clients, ids: ids, policy: policy}
}

func (u *TaskUseCase) CreateTask(ctx context.Context, in CreateTaskInput) (entities.Task, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Task{}, ErrTaskClientRequired
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.Task{}, ErrTaskDescriptionRequired
	}

	status := in.Status
	if status == "" {
		status = entities.TaskStatusPendiente
	}
	if !status.Valid() {
		return entities.Task{}, ErrInvalidTaskStatus
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.TaskPriorityMedia
	}
	if !priority.Valid() {
		return entities.Task{}, ErrInvalidTaskPriority
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Task{}, err
	}
	if client.ID == "" {
		return entities.Task{}, ErrTaskClientNotFound
	}

	id, err := u.freshID(ctx)
	if err != nil {
		return entities.Task{}, err
	}

	t := entities.Task{
		ID:             id,
		ClientID:       clientID,
		Description:    description,
		Status:         status,
		Priority:       priority,
		TechnicianName: strings.TrimSpace(in.TechnicianName),
		CreatedAt:      time.Now().UTC().Format(dateLayout),
	}
	return u.repo.Create(ctx, t)
}

// freshID returns an id no stored task already uses. The revision log reads
// a reused id as an update to the earlier task, so a colliding create would
// shadow an existing work order on every read path. Clock-based ids repeat
// within one millisecond; rejecting after a few attempts beats losing a
// record.
func (u *TaskUseCase) freshID(ctx context.Context) (string, error) {
	for i := 0; i < idRetries; i++ {
		id := u.ids.NewID()
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return id, nil
		}
	}
	return "", ErrTaskIDCollision
}

func (u *TaskUseCase) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return u.repo.List(ctx)
}

// AdvanceStatus records the caller-supplied target status. It does not
// compute "next status". Entering Finalizado stamps finished_at and raises
// the budget-offer signal; re-patching an already final task does neither
// again.
func (u *TaskUseCase) AdvanceStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.Task, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, false, ErrTaskNotFound
	}
	if !status.Valid() {
		return entities.Task{}, false, ErrInvalidTaskStatus
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, false, err
	}
	if t.ID == "" {
		return entities.Task{}, false, ErrTaskNotFound
	}

	if u.policy == TransitionStrict {
		if steps := status.StepsFrom(t.Status); steps < 0 || steps > 1 {
			return entities.Task{}, false, ErrInvalidTransition
		}
	}

	offerBudget := status == entities.TaskStatusFinalizado && t.Status != entities.TaskStatusFinalizado
	t.Status = status
	if offerBudget {
		t.FinishedAt = time.Now().UTC().Format(time.RFC3339)
	}

	updated, err := u.repo.AppendRevision(ctx, t)
	if err != nil {
		return entities.Task{}, false, err
	}
	return updated, offerBudget, nil
}
