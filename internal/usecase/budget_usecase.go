package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/infrastructure/idgen"
	"servicios_ili/internal/usecase/interfaces"
)

var (
	ErrBudgetClientRequired     = errors.New("budget client required")
	ErrBudgetClientNotFound     = errors.New("budget client not found")
	ErrBudgetItemDescRequired   = errors.New("budget item description required")
	ErrBudgetNegativeAmount     = errors.New("budget item amounts must be non-negative")
	ErrBudgetNotFound           = errors.New("budget not found")
	ErrBudgetNumberTaken        = errors.New("budget number already taken")
	ErrBudgetDocumentRenderFail = errors.New("budget document rendering failed")
)

const defaultValidityDays = 15

// numberRetries bounds the fresh-id attempts in strict numbering mode.
const numberRetries = 3

// IBudgetUseCase exposes the budget assembly pipeline and document access.
//
// Persistence and rendering are independent steps: CreateBudget only
// persists, RenderDocument only renders. A rendering failure never affects
// an already stored budget.
type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	ListBudgets(ctx context.Context) ([]entities.Budget, error)
	RenderDocument(ctx context.Context, number string) ([]byte, error)
}

type BudgetItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

type CreateBudgetInput struct {
	ClientID       string
	TaskID         string
	Date           string
	ValidityDays   int
	Items          []BudgetItemInput
	SignatureData  string
	PhotoURL       string
	TechnicianName string
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetRepository
	clients  interfaces.IClientRepository
	ids      interfaces.IIdentifierSource
	renderer interfaces.IDocumentRenderer

	// strictNumbers enables the read-before-write uniqueness check on
	// document numbers. Off by default: the scan costs a full sheet read
	// and trailing-4 collisions are an accepted, documented risk.
	strictNumbers bool
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, clients interfaces.IClientRepository, ids interfaces.IIdentifierSource, renderer interfaces.IDocumentRenderer, strictNumbers bool) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, clients: clients, ids: ids, renderer: renderer, strictNumbers: strictNumbers}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Budget{}, ErrBudgetClientRequired
	}

	items := make([]entities.BudgetItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		description := strings.TrimSpace(it.Description)
		if description == "" {
			return entities.Budget{}, ErrBudgetItemDescRequired
		}
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return entities.Budget{}, ErrBudgetNegativeAmount
		}
		item := entities.BudgetItem{
			Description: description,
			Quantity:    decimal.NewFromFloat(it.Quantity),
			UnitPrice:   decimal.NewFromFloat(it.UnitPrice),
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Budget{}, err
	}
	if client.ID == "" {
		return entities.Budget{}, ErrBudgetClientNotFound
	}

	id, number, err := u.assignNumber(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	validity := in.ValidityDays
	if validity <= 0 {
		validity = defaultValidityDays
	}

	b := entities.Budget{
		ID:             id,
		BudgetNumber:   number,
		ClientID:       clientID,
		TaskID:         strings.TrimSpace(in.TaskID),
		Date:           date,
		ValidityDays:   validity,
		Subtotal:       subtotal,
		Total:          subtotal, // no tax logic: total == subtotal
		Items:          items,
		SignatureData:  in.SignatureData,
		PhotoURL:       in.PhotoURL,
		TechnicianName: strings.TrimSpace(in.TechnicianName),
		DocumentLink:   fmt.Sprintf("/api/budgets/%s/document", number),
		CreatedAt:      time.Now().UTC().Format(dateLayout),
	}
	return u.repo.Create(ctx, b)
}

// assignNumber draws an id and derives its document number. In strict mode
// existing numbers are scanned first and a colliding draw is retried with a
// fresh id a bounded number of times.
func (u *BudgetUseCase) assignNumber(ctx context.Context) (id, number string, err error) {
	if !u.strictNumbers {
		id = u.ids.NewID()
		return id, idgen.DocumentNumber(id), nil
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return "", "", err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		taken[b.BudgetNumber] = struct{}{}
	}

	for i := 0; i < numberRetries; i++ {
		id = u.ids.NewID()
		number = idgen.DocumentNumber(id)
		if _, dup := taken[number]; !dup {
			return id, number, nil
		}
	}
	return "", "", ErrBudgetNumberTaken
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

func (u *BudgetUseCase) RenderDocument(ctx context.Context, number string) ([]byte, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrBudgetNotFound
	}

	b, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if b.BudgetNumber == "" {
		return nil, ErrBudgetNotFound
	}

	// Missing client degrades to an empty client block; the stored budget
	// must stay printable even with a dangling reference.
	client, err := u.clients.GetByID(ctx, b.ClientID)
	if err != nil {
		return nil, err
	}

	doc, err := u.renderer.Render(b, client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBudgetDocumentRenderFail, err)
	}
	return doc, nil
}
