package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicios_ili/internal/usecase"
)

// PortalHandler serves the client-facing portal projection. The response
// shape is uniform for known and unknown ids so the endpoint cannot be used
// to probe which client ids exist.
type PortalHandler struct {
	usecase usecase.IPortalUseCase
}

func NewPortalHandler(uc usecase.IPortalUseCase) *PortalHandler {
	return &PortalHandler{usecase: uc}
}

func (h *PortalHandler) GetOverview(c *gin.Context) {
	overview, err := h.usecase.GetOverview(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, overview)
}
