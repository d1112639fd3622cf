package ports

import "github.com/jsamuelsen/go-fortune/internal/domain"

// MetricsRecorder receives domain-level counters from the application layer.
// Implementations must be safe to call with no backing exporter configured.
type MetricsRecorder interface {
	// QuoteServed counts a quote printed for the given filter.
	QuoteServed(filter domain.SizeFilter)

	// QuoteAppended counts a record added to the database.
	QuoteAppended()

	// DatabaseRecords reports how many records the last load produced.
	DatabaseRecords(n int)

	// Failure counts a failed use case by error kind.
	Failure(kind string)
}
