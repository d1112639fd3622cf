// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter on anything that touches I/O
//   - Return domain types and domain errors (ErrLocate, ErrRead, ErrWrite)
//   - Keep interfaces small and focused
package ports

import (
	"context"
)

// QuoteRepository is the persisted quote database.
//
// Example usage in application layer:
//
//	type QuoteService struct {
//	    repo ports.QuoteRepository
//	}
//
//	records, err := s.repo.Load(ctx)
type QuoteRepository interface {
	// Load returns every record in stored order.
	// Returns domain.ErrLocate if the database cannot be found and
	// domain.ErrRead if it cannot be read as text.
	Load(ctx context.Context) ([]string, error)

	// Append stores text as the new last record.
	// Returns domain.ErrLocate or domain.ErrWrite on failure.
	Append(ctx context.Context, text string) error
}

// RandomSource draws uniformly distributed indexes.
type RandomSource interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}
