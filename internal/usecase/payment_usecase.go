package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentBudget      = errors.New("invalid budget number")
	ErrInvalidPaymentPayload     = errors.New("invalid payment payload")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IPaymentUseCase charges an emitted budget through the payment gateway and
// records the outcome as an immutable payment row.
//
// The charged amount is always the stored budget total; the caller's
// payload only carries payment-method details.
type IPaymentUseCase interface {
	ChargeBudget(ctx context.Context, budgetNumber string, payload json.RawMessage) (entities.BudgetPayment, error)
	ListByBudgetNumber(ctx context.Context, budgetNumber string) ([]entities.BudgetPayment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	budgets interfaces.IBudgetRepository
	gateway interfaces.IPaymentGateway
	ids     interfaces.IIdentifierSource
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, budgets interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway, ids interfaces.IIdentifierSource) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, budgets: budgets, gateway: gateway, ids: ids}
}

func (u *PaymentUseCase) ChargeBudget(ctx context.Context, budgetNumber string, payload json.RawMessage) (entities.BudgetPayment, error) {
	budgetNumber = strings.TrimSpace(budgetNumber)
	if budgetNumber == "" {
		return entities.BudgetPayment{}, ErrInvalidPaymentBudget
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.BudgetPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.BudgetPayment{}, ErrPaymentGatewayUnavailable
	}

	b, err := u.budgets.GetByNumber(ctx, budgetNumber)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if b.BudgetNumber == "" {
		return entities.BudgetPayment{}, ErrBudgetNotFound
	}

	// external_reference ties the provider-side payment back to the
	// document number; the amount is taken from the stored budget, never
	// from the caller.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.BudgetPayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = budgetNumber
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Presupuesto %s", budgetNumber)
	}
	reqMap["transaction_amount"] = b.Total.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BudgetPayment{}, err
	}

	log.Printf("[payment][usecase] charging budget_number=%s amount=%s", budgetNumber, b.Total.String())
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed budget_number=%s err=%v", budgetNumber, err)
		return entities.BudgetPayment{}, err
	}

	p := entities.BudgetPayment{
		ID:                u.ids.NewID(),
		BudgetNumber:      budgetNumber,
		Date:              time.Now().UTC().Format(dateLayout),
		Status:            mapProviderStatus(providerStatus),
		Amount:            b.Total,
		ProviderPaymentID: providerID,
		ProviderResponse:  providerResp,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) ListByBudgetNumber(ctx context.Context, budgetNumber string) ([]entities.BudgetPayment, error) {
	budgetNumber = strings.TrimSpace(budgetNumber)
	if budgetNumber == "" {
		return nil, ErrInvalidPaymentBudget
	}
	return u.repo.ListByBudgetNumber(ctx, budgetNumber)
}

func mapProviderStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved", "accredited":
		return entities.PaymentStatusAprobado
	case "rejected", "cancelled":
		return entities.PaymentStatusRechazado
	default:
		return entities.PaymentStatusPendiente
	}
}
