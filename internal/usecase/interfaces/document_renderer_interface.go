package interfaces

import "servicios_ili/internal/domain/entities"

// IDocumentRenderer turns a persisted Budget into a printable artifact.
//
// Rendering is independent from persistence: a render failure after a
// successful create is a partial-success outcome for the caller, never a
// reason to lose the stored record.
type IDocumentRenderer interface {
	Render(b entities.Budget, c entities.Client) ([]byte, error)
}
