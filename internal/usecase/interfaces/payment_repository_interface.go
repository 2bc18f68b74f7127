package interfaces

import (
	"context"

	"servicios_ili/internal/domain/entities"
)

// IPaymentRepository abstracts tabular-store persistence for BudgetPayment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error)
	ListByBudgetNumber(ctx context.Context, number string) ([]entities.BudgetPayment, error)
}
