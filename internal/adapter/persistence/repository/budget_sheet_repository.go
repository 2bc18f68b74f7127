package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// BudgetSheetRepository persists Budget records in the "Presupuestos" sheet.
//
// Columns: budget_number, client_id, date, subtotal, total, technician_name,
// document_link, id, task_id, validity_days, items (JSON), signature_data,
// photo_url, created_at.
//
// The first seven columns are the original ledger layout; the rest were
// appended later, so older rows are shorter and read back with empty
// trailing fields. Signature and photo rasters are embedded data URLs, not
// object-store references.
type BudgetSheetRepository struct {
	store   interfaces.ITabularStore
	clients interfaces.IClientRepository
}

var _ interfaces.IBudgetRepository = (*BudgetSheetRepository)(nil)

func NewBudgetSheetRepository(store interfaces.ITabularStore, clients interfaces.IClientRepository) *BudgetSheetRepository {
	return &BudgetSheetRepository{store: store, clients: clients}
}

func (r *BudgetSheetRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	row, err := budgetToRow(b)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := r.store.AppendRows(ctx, budgetsSheet, budgetsAppendRange, [][]string{row}); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetSheetRepository) List(ctx context.Context) ([]entities.Budget, error) {
	budgets, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}

	names, err := clientNameIndex(ctx, r.clients)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		budgets[i].ClientName = lookupName(names, budgets[i].ClientID)
	}
	return budgets, nil
}

func (r *BudgetSheetRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	budgets, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.ClientID == clientID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (r *BudgetSheetRepository) GetByNumber(ctx context.Context, number string) (entities.Budget, error) {
	budgets, err := r.listAll(ctx)
	if err != nil {
		return entities.Budget{}, err
	}
	for _, b := range budgets {
		if b.BudgetNumber == number {
			return b, nil
		}
	}
	return entities.Budget{}, nil
}

func (r *BudgetSheetRepository) listAll(ctx context.Context) ([]entities.Budget, error) {
	rows, err := r.store.ReadRange(ctx, budgetsSheet, budgetsReadRange)
	if err != nil {
		return nil, err
	}
	budgets := make([]entities.Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, rowToBudget(row))
	}
	return budgets, nil
}

func budgetToRow(b entities.Budget) ([]string, error) {
	items := ""
	if len(b.Items) > 0 {
		raw, err := json.Marshal(b.Items)
		if err != nil {
			return nil, err
		}
		items = string(raw)
	}
	return []string{
		b.BudgetNumber,
		b.ClientID,
		b.Date,
		b.Subtotal.String(),
		b.Total.String(),
		b.TechnicianName,
		b.DocumentLink,
		b.ID,
		b.TaskID,
		strconv.Itoa(b.ValidityDays),
		items,
		b.SignatureData,
		b.PhotoURL,
		b.CreatedAt,
	}, nil
}

func rowToBudget(row []string) entities.Budget {
	var items []entities.BudgetItem
	if raw := cell(row, 10); raw != "" {
		// Tolerate hand-edited cells; a broken items blob degrades to the
		// header-only view rather than aborting the listing.
		_ = json.Unmarshal([]byte(raw), &items)
	}
	validity, _ := strconv.Atoi(cell(row, 9))
	return entities.Budget{
		BudgetNumber:   cell(row, 0),
		ClientID:       cell(row, 1),
		Date:           cell(row, 2),
		Subtotal:       parseDecimal(cell(row, 3)),
		Total:          parseDecimal(cell(row, 4)),
		TechnicianName: cell(row, 5),
		DocumentLink:   cell(row, 6),
		ID:             cell(row, 7),
		TaskID:         cell(row, 8),
		ValidityDays:   validity,
		Items:          items,
		SignatureData:  cell(row, 11),
		PhotoURL:       cell(row, 12),
		CreatedAt:      cell(row, 13),
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
