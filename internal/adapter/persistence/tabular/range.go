package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"servicios_ili/pkg"
)

// A1Range is a parsed A1-style column range ("A2:G", "A:N").
//
// The ledger keeps the original sheet addressing convention: row 1 is the
// header, so data reads start at row 2. Only the column span matters to the
// store; the grammar is validated up front because a malformed range is a
// configuration error that must abort startup, not a retryable failure.
//
// The row component is grammar-checked but not consulted by the DynamoDB
// backend: it stores no header row and every read starts at the first data
// row regardless of StartRow.
type A1Range struct {
	StartCol int // 1-based
	EndCol   int
	StartRow int // 0 when the range is unbounded (append form "A:G")
}

// Width is the number of addressed columns.
func (r A1Range) Width() int { return r.EndCol - r.StartCol + 1 }

// ParseA1Range validates and decodes rng. Errors wrap pkg.ErrBadRange.
func ParseA1Range(rng string) (A1Range, error) {
	parts := strings.Split(rng, ":")
	if len(parts) != 2 {
		return A1Range{}, fmt.Errorf("%w: %q", pkg.ErrBadRange, rng)
	}

	startCol, startRow, err := parseCell(parts[0])
	if err != nil {
		return A1Range{}, fmt.Errorf("%w: %q", pkg.ErrBadRange, rng)
	}
	endCol, _, err := parseCell(parts[1])
	if err != nil {
		return A1Range{}, fmt.Errorf("%w: %q", pkg.ErrBadRange, rng)
	}
	if endCol < startCol {
		return A1Range{}, fmt.Errorf("%w: %q", pkg.ErrBadRange, rng)
	}
	return A1Range{StartCol: startCol, EndCol: endCol, StartRow: startRow}, nil
}

// parseCell decodes "A", "G42", "AA2" into a 1-based column index and an
// optional row number.
func parseCell(cell string) (col, row int, err error) {
	if cell == "" {
		return 0, 0, fmt.Errorf("empty cell")
	}
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int(cell[i]-'A'+1)
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("missing column letters")
	}
	if i < len(cell) {
		row, err = strconv.Atoi(cell[i:])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("bad row number")
		}
	}
	return col, row, nil
}
