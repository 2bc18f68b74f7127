package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	request "servicios_ili/internal/adapter/http/dto/request"
	response "servicios_ili/internal/adapter/http/dto/response"
	"servicios_ili/internal/usecase"
	"servicios_ili/pkg"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for budgets and their rendered
// documents.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListBudgets(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	items := make([]usecase.BudgetItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, usecase.BudgetItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	budget, err := h.usecase.CreateBudget(c.Request.Context(), usecase.CreateBudgetInput{
		ClientID:       payload.ClientID,
		TaskID:         payload.TaskID,
		Date:           payload.Date,
		ValidityDays:   payload.ValidityDays,
		Items:          items,
		SignatureData:  payload.SignatureData,
		PhotoURL:       payload.PhotoURL,
		TechnicianName: payload.TechnicianName,
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.BudgetCreatedResponse{
		ID:           budget.ID,
		BudgetNumber: budget.BudgetNumber,
		DocumentLink: budget.DocumentLink,
	})
}

// DownloadDocument streams the rendered budget document as an attachment.
// A rendering failure reports DOCUMENT_RENDER_FAILED; the stored budget is
// unaffected and the download can simply be retried.
func (h *BudgetHandler) DownloadDocument(c *gin.Context) {
	number := c.Param("number")

	doc, err := h.usecase.RenderDocument(c.Request.Context(), number)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "Presupuesto_"+number+".html"))
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBudgetClientRequired),
		errors.Is(err, usecase.ErrBudgetItemDescRequired),
		errors.Is(err, usecase.ErrBudgetNegativeAmount):
		return pkg.NewDomainError("INVALID_BUDGET_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Referenced client does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNumberTaken):
		return pkg.NewDomainErrorSimple("BUDGET_NUMBER_TAKEN", "Could not allocate a unique budget number", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetDocumentRenderFail):
		return pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Budget document rendering failed, the stored budget is intact", err, http.StatusInternalServerError)
	default:
		return mapStoreError(err)
	}
}
