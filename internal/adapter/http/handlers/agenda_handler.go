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

var errInvalidAgendaPayload = pkg.NewDomainErrorSimple("INVALID_AGENDA_INPUT", "Invalid agenda event payload", http.StatusBadRequest)

// AgendaHandler handles HTTP requests for the scheduling calendar.
type AgendaHandler struct {
	usecase usecase.IAgendaUseCase
}

func NewAgendaHandler(uc usecase.IAgendaUseCase) *AgendaHandler {
	return &AgendaHandler{usecase: uc}
}

func (h *AgendaHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context())
	if err != nil {
		appErr := mapAgendaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *AgendaHandler) CreateEvent(c *gin.Context) {
	var payload request.AgendaEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgendaPayload.HTTPStatus, errInvalidAgendaPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.CreateEvent(c.Request.Context(), usecase.CreateAgendaEventInput{
		ClientID:    payload.ClientID,
		Title:       payload.Title,
		Description: payload.Description,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Type:        entities.AgendaEventType(payload.Type),
	})
	if err != nil {
		appErr := mapAgendaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: event.ID})
}

func mapAgendaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAgendaClientRequired),
		errors.Is(err, usecase.ErrAgendaTitleRequired),
		errors.Is(err, usecase.ErrAgendaTimeRequired),
		errors.Is(err, usecase.ErrInvalidAgendaType):
		return pkg.NewDomainError("INVALID_AGENDA_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAgendaClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Referenced client does not exist", http.StatusBadRequest)
	default:
		return mapStoreError(err)
	}
}
