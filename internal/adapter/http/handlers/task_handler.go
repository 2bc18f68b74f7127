package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "servicios_ili/internal/adapter/http/dto/request"
	response "servicios_ili/internal/adapter/http/dto/response"
	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase"
	"servicios_ili/pkg"
)

var errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)

// TaskHandler handles HTTP requests for work orders. Both the staff UI and
// the client portal create tasks through the same path.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.ListTasks(c.Request.Context())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.CreateTask(c.Request.Context(), usecase.CreateTaskInput{
		ClientID:       payload.ClientID,
		Description:    payload.Description,
		Status:         entities.TaskStatus(payload.Status),
		Priority:       entities.TaskPriority(payload.Priority),
		TechnicianName: payload.TechnicianName,
	})
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: task.ID})
}

// PatchTaskStatus records the caller-supplied target status and reports the
// budget-offer signal back to the UI.
func (h *TaskHandler) PatchTaskStatus(c *gin.Context) {
	var payload request.TaskStatusPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, offerBudget, err := h.usecase.AdvanceStatus(c.Request.Context(), c.Param("id"), entities.TaskStatus(payload.Status))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTaskPatch(task, offerBudget))
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTaskClientRequired),
		errors.Is(err, usecase.ErrTaskDescriptionRequired),
		errors.Is(err, usecase.ErrInvalidTaskStatus),
		errors.Is(err, usecase.ErrInvalidTaskPriority):
		return pkg.NewDomainError("INVALID_TASK_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Referenced client does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTaskIDCollision):
		return pkg.NewDomainErrorSimple("TASK_ID_COLLISION", "Could not allocate a unique task id, retry the request", http.StatusConflict)
	default:
		return mapStoreError(err)
	}
}
