package app

import (
	"github.com/jsamuelsen/go-fortune/internal/domain"
	"github.com/jsamuelsen/go-fortune/internal/platform/ansi"
)

// colorPrefixes maps each color to its SGR prefix. ColorNone is absent.
var colorPrefixes = map[domain.ColorChoice]string{
	domain.ColorRed:     ansi.Red,
	domain.ColorGreen:   ansi.Green,
	domain.ColorYellow:  ansi.Yellow,
	domain.ColorBlue:    ansi.Blue,
	domain.ColorMagenta: ansi.Magenta,
	domain.ColorCyan:    ansi.Cyan,
}

// Render applies the output-time color transform to text.
// ColorNone and unknown values return text unchanged.
func Render(text string, color domain.ColorChoice) string {
	return ansi.Wrap(colorPrefixes[color], text)
}
