package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/go-fortune/internal/domain"
)

func TestRender(t *testing.T) {
	tests := []struct {
		color    domain.ColorChoice
		expected string
	}{
		{color: domain.ColorNone, expected: "X"},
		{color: domain.ColorRed, expected: "\x1B[31mX\x1B[0m"},
		{color: domain.ColorGreen, expected: "\x1B[32mX\x1B[0m"},
		{color: domain.ColorYellow, expected: "\x1B[33mX\x1B[0m"},
		{color: domain.ColorBlue, expected: "\x1B[34mX\x1B[0m"},
		{color: domain.ColorMagenta, expected: "\x1B[35mX\x1B[0m"},
		{color: domain.ColorCyan, expected: "\x1B[36mX\x1B[0m"},
		{color: domain.ColorChoice(99), expected: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Render("X", tt.color))
		})
	}
}

func TestRender_PreservesWhitespace(t *testing.T) {
	text := "  line one\n\tline two  "

	assert.Equal(t, text, Render(text, domain.ColorNone))
	assert.Equal(t, "\x1b[34m"+text+"\x1b[0m", Render(text, domain.ColorBlue))
}
