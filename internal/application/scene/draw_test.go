package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#1e3a2a", color.RGBA{0x1e, 0x3a, 0x2a, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"", fallback},
		{"1e3a2a", fallback},
		{"#12345", fallback},
		{"#zzzzzz", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.in, fallback))
		})
	}
}
