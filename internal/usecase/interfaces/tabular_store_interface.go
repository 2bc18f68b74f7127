package interfaces

import "context"

// ITabularStore is the primitive persistence port: an external,
// range-addressable table of untyped cells, append-only.
//
// Contract:
//   - ReadRange returns rows in store order (insertion order); an empty
//     sheet yields an empty slice, never an error.
//   - AppendRows is atomic for the single call; concurrent appends against
//     the same sheet may interleave but never overwrite each other.
//   - There is no update-in-place and no delete.
//   - Transient I/O failures are reported wrapping pkg.ErrStoreUnavailable;
//     a malformed range wraps pkg.ErrBadRange and is fatal, not retryable.
//
// The store knows nothing about entity shapes; it speaks row-tuples only.
type ITabularStore interface {
	ReadRange(ctx context.Context, sheet, rng string) ([][]string, error)
	AppendRows(ctx context.Context, sheet, rng string, rows [][]string) error
}
