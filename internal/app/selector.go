package app

import (
	"math/rand/v2"

	"github.com/jsamuelsen/go-fortune/internal/domain"
	"github.com/jsamuelsen/go-fortune/internal/ports"
)

// systemRandom draws from the runtime's ChaCha8 generator, which is seeded
// from operating system entropy at startup.
type systemRandom struct{}

func (systemRandom) IntN(n int) int {
	return rand.IntN(n)
}

// SystemRandom returns the default uniform random source.
func SystemRandom() ports.RandomSource {
	return systemRandom{}
}

// Selector draws one record uniformly from the records matching a filter.
type Selector struct {
	rng ports.RandomSource
}

// NewSelector creates a selector. A nil source uses SystemRandom.
func NewSelector(rng ports.RandomSource) *Selector {
	if rng == nil {
		rng = SystemRandom()
	}

	return &Selector{rng: rng}
}

// Select returns a record satisfying filter, chosen uniformly over the
// whole filtered subset. An empty subset is reported as
// domain.ErrEmptySelection before any index is drawn.
func (s *Selector) Select(records []string, filter domain.SizeFilter) (string, error) {
	subset := domain.FilterRecords(records, filter)
	if len(subset) == 0 {
		return "", domain.NewEmptySelectionError(filter, len(records))
	}

	return subset[s.rng.IntN(len(subset))], nil
}
