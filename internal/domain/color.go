package domain

import "strings"

// ColorChoice is the terminal color applied to rendered output.
type ColorChoice int

const (
	ColorNone ColorChoice = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
)

var colorNames = map[ColorChoice]string{
	ColorNone:    "none",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
}

// String returns the lowercase color name.
func (c ColorChoice) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}

	return "unknown"
}

// ParseColorChoice maps a case-insensitive color name to a choice.
// Unrecognized names yield ColorNone; the second result reports whether
// the name was recognized.
func ParseColorChoice(name string) (ColorChoice, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))

	for c, n := range colorNames {
		if n == needle {
			return c, true
		}
	}

	return ColorNone, false
}
