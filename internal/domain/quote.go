// Package domain contains core business entities and rules.
package domain

// Separator is the literal sequence that delimits records in a quote database.
const Separator = "\n%\n"

// Quote is one record chosen from the database together with its rendering.
// It is built once per invocation and never persisted.
type Quote struct {
	// Text is the record exactly as stored, surrounding whitespace included.
	Text string

	// Rendered is Text after the output transform for the requested color.
	Rendered string

	// Size is the length category the record falls into.
	Size SizeFilter

	// Color is the color that was applied when rendering.
	Color ColorChoice
}
