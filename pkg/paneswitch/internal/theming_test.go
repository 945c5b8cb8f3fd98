package internal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}, HexToColor(0x008080))
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, HexToColor(0x123456))
}

func TestSetTheme(t *testing.T) {
	prev := GetTheme()
	defer SetTheme(prev)

	SetTheme(Theme{AccentColor: HexToColor(0xFF0000)})
	assert.Equal(t, uint8(0xFF), GetTheme().AccentColor.R)
}
