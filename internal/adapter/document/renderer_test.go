package document

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"servicios_ili/internal/domain/entities"
)

func TestBudgetRenderer_Render(t *testing.T) {
	r := NewBudgetRenderer()

	t.Run("full document", func(t *testing.T) {
		b := entities.Budget{
			BudgetNumber: "ILI-1234",
			Date:         "2024-06-01",
			ValidityDays: 15,
			Subtotal:     decimal.RequireFromString("1500.50"),
			Total:        decimal.RequireFromString("1500.50"),
			Items: []entities.BudgetItem{
				{Description: "Compresor", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("1200.50")},
				{Description: "Mano de obra", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(150)},
			},
			SignatureData:  "data:image/png;base64,AAAA",
			TechnicianName: "Juan",
		}
		c := entities.Client{Name: "Acme SRL", Address: "Av. Siempre Viva 742", Cuit: "30-1234"}

		out, err := r.Render(b, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc := string(out)

		for _, want := range []string{
			"ILI-1234",
			"Acme SRL",
			"30-1234",
			"Compresor",
			"$1200.50",
			"$300.00",
			"$1500.50",
			"data:image/png;base64,AAAA",
			"PRESUPUESTO / REMITO",
		} {
			if !strings.Contains(doc, want) {
				t.Fatalf("document missing %q", want)
			}
		}
	})

	t.Run("empty items still renders totals page", func(t *testing.T) {
		b := entities.Budget{BudgetNumber: "ILI-0001", ValidityDays: 15}
		out, err := r.Render(b, entities.Client{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc := string(out)
		if !strings.Contains(doc, "TOTAL") || !strings.Contains(doc, "$0.00") {
			t.Fatalf("expected totals block in empty document")
		}
	})

	t.Run("long quotes paginate", func(t *testing.T) {
		b := entities.Budget{BudgetNumber: "ILI-0002"}
		for i := 0; i < itemsPerPage+1; i++ {
			b.Items = append(b.Items, entities.BudgetItem{
				Description: "Item", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1),
			})
		}
		out, err := r.Render(b, entities.Client{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(string(out), `<div class="page">`); got != 2 {
			t.Fatalf("expected 2 pages, got %d", got)
		}
	})

	t.Run("non data urls are dropped", func(t *testing.T) {
		b := entities.Budget{
			BudgetNumber:  "ILI-0003",
			SignatureData: "https://evil.example/steal.png",
		}
		out, err := r.Render(b, entities.Client{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(out), "evil.example") {
			t.Fatalf("external url must not be emitted")
		}
	})
}
