// Package repository maps tabular-store rows to typed domain records.
//
// Column order is the on-disk format: the order written by Create must
// exactly match the order read by List for each sheet. Never reorder
// columns; schema changes may only append columns on the right.
package repository

import (
	"context"
	"os"

	"servicios_ili/internal/usecase/interfaces"

	"servicios_ili/internal/adapter/persistence/tabular"
)

// Sheet names are env-overridable, mirroring how table names are wired for
// the document store.
var (
	clientsSheet  = getenvDefault("CLIENTS_SHEET", "Clientes")
	tasksSheet    = getenvDefault("TASKS_SHEET", "Tareas")
	budgetsSheet  = getenvDefault("BUDGETS_SHEET", "Presupuestos")
	agendaSheet   = getenvDefault("AGENDA_SHEET", "Agenda")
	paymentsSheet = getenvDefault("PAYMENTS_SHEET", "Pagos")
)

// Read ranges skip the header row (A2); append ranges address whole
// columns, the sheet-store convention for "after the last row".
const (
	clientsReadRange   = "A2:G"
	clientsAppendRange = "A:G"

	tasksReadRange   = "A2:H"
	tasksAppendRange = "A:H"

	budgetsReadRange   = "A2:N"
	budgetsAppendRange = "A:N"

	agendaReadRange   = "A2:G"
	agendaAppendRange = "A:G"

	paymentsReadRange   = "A2:G"
	paymentsAppendRange = "A:G"
)

// ValidateRanges checks every configured range at startup. A malformed
// range is a configuration error: the service must abort rather than serve
// degraded traffic.
func ValidateRanges() error {
	for _, rng := range []string{
		clientsReadRange, clientsAppendRange,
		tasksReadRange, tasksAppendRange,
		budgetsReadRange, budgetsAppendRange,
		agendaReadRange, agendaAppendRange,
		paymentsReadRange, paymentsAppendRange,
	} {
		if _, err := tabular.ParseA1Range(rng); err != nil {
			return err
		}
	}
	return nil
}

// cell returns column i of a row, empty when the row is shorter. Rows
// written before a trailing column existed are shorter than the current
// schema and must read back cleanly.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// clientNameIndex builds the id -> name lookup used for read-time joins.
// The join is best-effort enrichment: a dangling reference resolves to a
// missing key, never an error.
func clientNameIndex(ctx context.Context, clients interfaces.IClientRepository) (map[string]string, error) {
	list, err := clients.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]string, len(list))
	for _, c := range list {
		idx[c.ID] = c.Name
	}
	return idx, nil
}

func lookupName(idx map[string]string, clientID string) *string {
	if name, ok := idx[clientID]; ok {
		return &name
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
