package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"servicios_ili/internal/domain/entities"
	mock_interfaces "servicios_ili/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_CreateBudget(t *testing.T) {
	t.Run("client required", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, false)
		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{})
		if !errors.Is(err, ErrBudgetClientRequired) {
			t.Fatalf("expected ErrBudgetClientRequired, got %v", err)
		}
	})

	t.Run("item description required", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, false)
		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{
			ClientID: "c1",
			Items:    []BudgetItemInput{{Description: "  ", Quantity: 1, UnitPrice: 10}},
		})
		if !errors.Is(err, ErrBudgetItemDescRequired) {
			t.Fatalf("expected ErrBudgetItemDescRequired, got %v", err)
		}
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, false)
		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{
			ClientID: "c1",
			Items:    []BudgetItemInput{{Description: "x", Quantity: -1, UnitPrice: 10}},
		})
		if !errors.Is(err, ErrBudgetNegativeAmount) {
			t.Fatalf("expected ErrBudgetNegativeAmount, got %v", err)
		}
	})

	t.Run("unknown client rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewBudgetUseCase(nil, clients, nil, nil, false)

		clients.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Client{}, nil)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{ClientID: "ghost"})
		if !errors.Is(err, ErrBudgetClientNotFound) {
			t.Fatalf("expected ErrBudgetClientNotFound, got %v", err)
		}
	})

	t.Run("totals are exact decimal sums", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		ids := mock_interfaces.NewMockIIdentifierSource(ctrl)
		uc := NewBudgetUseCase(repo, clients, ids, nil, false)

		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		ids.EXPECT().NewID().Return("98761234")
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				// 3 * 0.10 must be exactly 0.30.
				if !b.Subtotal.Equal(decimal.RequireFromString("0.3")) {
					t.Fatalf("unexpected subtotal: %s", b.Subtotal)
				}
				if !b.Total.Equal(b.Subtotal) {
					t.Fatalf("total must equal subtotal: %+v", b)
				}
				if b.BudgetNumber != "ILI-1234" {
					t.Fatalf("unexpected number: %s", b.BudgetNumber)
				}
				if b.DocumentLink != "/api/budgets/ILI-1234/document" {
					t.Fatalf("unexpected link: %s", b.DocumentLink)
				}
				if b.ValidityDays != 15 {
					t.Fatalf("expected default validity, got %d", b.ValidityDays)
				}
				if b.Date == "" || b.CreatedAt == "" {
					t.Fatalf("expected date stamps: %+v", b)
				}
				return b, nil
			},
		)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{
			ClientID: "c1",
			Items:    []BudgetItemInput{{Description: "Gas", Quantity: 3, UnitPrice: 0.1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero items yields zero totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		ids := mock_interfaces.NewMockIIdentifierSource(ctrl)
		uc := NewBudgetUseCase(repo, clients, ids, nil, false)

		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		ids.EXPECT().NewID().Return("id1")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if !b.Subtotal.IsZero() || !b.Total.IsZero() {
					t.Fatalf("expected zero totals: %+v", b)
				}
				return b, nil
			},
		)

		if _, err := uc.CreateBudget(context.Background(), CreateBudgetInput{ClientID: "c1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("strict numbering retries on collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		ids := mock_interfaces.NewMockIIdentifierSource(ctrl)
		uc := NewBudgetUseCase(repo, clients, ids, nil, true)

		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Budget{{BudgetNumber: "ILI-1234"}}, nil)
		gomock.InOrder(
			ids.EXPECT().NewID().Return("xx1234"),
			ids.EXPECT().NewID().Return("xx5678"),
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.BudgetNumber != "ILI-5678" {
					t.Fatalf("expected retried number, got %s", b.BudgetNumber)
				}
				return b, nil
			},
		)

		if _, err := uc.CreateBudget(context.Background(), CreateBudgetInput{ClientID: "c1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("strict numbering gives up after bounded retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		ids := mock_interfaces.NewMockIIdentifierSource(ctrl)
		uc := NewBudgetUseCase(repo, clients, ids, nil, true)

		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Budget{{BudgetNumber: "ILI-1234"}}, nil)
		ids.EXPECT().NewID().Return("xx1234").Times(3)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{ClientID: "c1"})
		if !errors.Is(err, ErrBudgetNumberTaken) {
			t.Fatalf("expected ErrBudgetNumberTaken, got %v", err)
		}
	})
}

func TestBudgetUseCase_RenderDocument(t *testing.T) {
	t.Run("empty number", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, false)
		_, err := uc.RenderDocument(context.Background(), "  ")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("unknown number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, false)

		repo.EXPECT().GetByNumber(gomock.Any(), "ILI-9999").Return(entities.Budget{}, nil)

		_, err := uc.RenderDocument(context.Background(), "ILI-9999")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("renders even with dangling client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewBudgetUseCase(repo, clients, nil, renderer, false)

		b := entities.Budget{BudgetNumber: "ILI-1234", ClientID: "ghost"}
		repo.EXPECT().GetByNumber(gomock.Any(), "ILI-1234").Return(b, nil)
		clients.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Client{}, nil)
		renderer.EXPECT().Render(b, entities.Client{}).Return([]byte("<html>"), nil)

		doc, err := uc.RenderDocument(context.Background(), "ILI-1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(doc) != "<html>" {
			t.Fatalf("unexpected document: %s", doc)
		}
	})

	t.Run("render failure wraps sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewBudgetUseCase(repo, clients, nil, renderer, false)

		b := entities.Budget{BudgetNumber: "ILI-1234", ClientID: "c1"}
		repo.EXPECT().GetByNumber(gomock.Any(), "ILI-1234").Return(b, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("template"))

		_, err := uc.RenderDocument(context.Background(), "ILI-1234")
		if !errors.Is(err, ErrBudgetDocumentRenderFail) {
			t.Fatalf("expected ErrBudgetDocumentRenderFail, got %v", err)
		}
	})
}
