package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "servicios_ili/internal/adapter/http/dto/request"
	response "servicios_ili/internal/adapter/http/dto/response"
	"servicios_ili/internal/usecase"
	"servicios_ili/pkg"
)

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

// ClientHandler handles HTTP requests for the client registry.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), usecase.CreateClientInput{
		Name:          payload.Name,
		Cuit:          payload.Cuit,
		Address:       payload.Address,
		Phone:         payload.Phone,
		ContactPerson: payload.ContactPerson,
	})
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: client.ID})
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Client name is required", http.StatusBadRequest)
	default:
		return mapStoreError(err)
	}
}
