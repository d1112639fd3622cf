package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorChoice
		ok       bool
	}{
		{input: "red", expected: ColorRed, ok: true},
		{input: "GREEN", expected: ColorGreen, ok: true},
		{input: "Yellow", expected: ColorYellow, ok: true},
		{input: "blue", expected: ColorBlue, ok: true},
		{input: "mAgEnTa", expected: ColorMagenta, ok: true},
		{input: "cyan", expected: ColorCyan, ok: true},
		{input: "none", expected: ColorNone, ok: true},
		{input: "purple", expected: ColorNone, ok: false},
		{input: "", expected: ColorNone, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, ok := ParseColorChoice(tt.input)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestColorChoice_String(t *testing.T) {
	assert.Equal(t, "red", ColorRed.String())
	assert.Equal(t, "none", ColorNone.String())
	assert.Equal(t, "unknown", ColorChoice(99).String())
}
