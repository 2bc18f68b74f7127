package interfaces

// IIdentifierSource produces entity identifiers.
//
// It is injected rather than read from the wall clock inline so tests can
// force collisions deterministically. Implementations decide the tradeoff
// between ledger compatibility (timestamp ids) and collision resistance
// (random ids); callers must tolerate suffix collisions in derived document
// numbers either way.
type IIdentifierSource interface {
	NewID() string
}
