// Package idgen provides the identifier sources and the document-number
// scheme used across the ledger.
package idgen

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"servicios_ili/internal/usecase/interfaces"
)

// ClockSource issues millisecond wall-clock timestamps rendered as strings,
// wire compatible with ids already present in the ledger. Two creations in
// the same millisecond collide; that tradeoff is accepted for legacy data
// and tests must not rely on uniqueness under true concurrency.
type ClockSource struct {
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

var _ interfaces.IIdentifierSource = (*ClockSource)(nil)

func (s *ClockSource) NewID() string {
	now := time.Now
	if s != nil && s.Now != nil {
		now = s.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// RandomSource issues collision-resistant 128-bit random identifiers.
// This is the production default.
type RandomSource struct{}

var _ interfaces.IIdentifierSource = (*RandomSource)(nil)

func (RandomSource) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FromEnv selects the identifier source: ID_SOURCE=clock restores the
// legacy timestamp scheme, anything else gets RandomSource.
func FromEnv(idSource string) interfaces.IIdentifierSource {
	if strings.EqualFold(strings.TrimSpace(idSource), "clock") {
		return &ClockSource{}
	}
	return RandomSource{}
}

const documentNumberPrefix = "ILI-"

// DocumentNumber derives the human-facing number printed on a budget:
// the fixed prefix plus the last four characters of the entity id.
// It deliberately does not consult prior state, so two ids sharing a
// trailing-4 suffix produce the same number; callers wanting a hard
// guarantee must do a read-before-write check.
func DocumentNumber(id string) string {
	suffix := id
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return documentNumberPrefix + suffix
}
