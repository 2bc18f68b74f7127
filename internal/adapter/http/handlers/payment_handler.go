package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase"
	"servicios_ili/pkg"
)

// PaymentHandler handles HTTP requests for budget payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ChargeBudget forwards the raw request body to the payment gateway as the
// payment-method payload. The charged amount always comes from the stored
// budget, never from the body.
func (h *PaymentHandler) ChargeBudget(c *gin.Context) {
	number := c.Param("number")
	log.Printf("[payment][handler] charge start budget_number=%s", number)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[payment][handler] body read failed budget_number=%s err=%v", number, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := h.usecase.ChargeBudget(c.Request.Context(), number, body)
	if err != nil {
		log.Printf("[payment][handler] charge failed budget_number=%s err=%v", number, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success budget_number=%s payment_id=%s status=%s", number, payment.ID, payment.Status)

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	number := c.Param("number")

	payments, err := h.usecase.ListByBudgetNumber(c.Request.Context(), number)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if payments == nil {
		payments = []entities.BudgetPayment{}
	}
	c.JSON(http.StatusOK, payments)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudget),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainError("INVALID_PAYMENT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return mapStoreError(err)
	}
}
