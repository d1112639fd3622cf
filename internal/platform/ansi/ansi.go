// Package ansi provides the ANSI SGR sequences used for terminal output.
package ansi

// ANSI color codes for terminal output
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
)

// Wrap surrounds text with the given color prefix and the reset suffix.
// An empty prefix returns text unchanged.
func Wrap(prefix, text string) string {
	if prefix == "" {
		return text
	}

	return prefix + text + Reset
}
