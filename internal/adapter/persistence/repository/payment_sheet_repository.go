package repository

import (
	"context"
	"encoding/json"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// PaymentSheetRepository persists BudgetPayment records in the "Pagos" sheet.
//
// Columns: id, budget_number, date, status, amount, provider_payment_id,
// provider_response.
type PaymentSheetRepository struct {
	store interfaces.ITabularStore
}

var _ interfaces.IPaymentRepository = (*PaymentSheetRepository)(nil)

func NewPaymentSheetRepository(store interfaces.ITabularStore) *PaymentSheetRepository {
	return &PaymentSheetRepository{store: store}
}

func (r *PaymentSheetRepository) Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
	row := []string{
		p.ID,
		p.BudgetNumber,
		p.Date,
		string(p.Status),
		p.Amount.String(),
		p.ProviderPaymentID,
		string(p.ProviderResponse),
	}
	if err := r.store.AppendRows(ctx, paymentsSheet, paymentsAppendRange, [][]string{row}); err != nil {
		return entities.BudgetPayment{}, err
	}
	return p, nil
}

func (r *PaymentSheetRepository) ListByBudgetNumber(ctx context.Context, number string) ([]entities.BudgetPayment, error) {
	rows, err := r.store.ReadRange(ctx, paymentsSheet, paymentsReadRange)
	if err != nil {
		return nil, err
	}

	payments := make([]entities.BudgetPayment, 0)
	for _, row := range rows {
		if cell(row, 1) != number {
			continue
		}
		p := entities.BudgetPayment{
			ID:                cell(row, 0),
			BudgetNumber:      cell(row, 1),
			Date:              cell(row, 2),
			Status:            entities.PaymentStatus(cell(row, 3)),
			Amount:            parseDecimal(cell(row, 4)),
			ProviderPaymentID: cell(row, 5),
		}
		if raw := cell(row, 6); raw != "" && json.Valid([]byte(raw)) {
			p.ProviderResponse = json.RawMessage(raw)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
