package internal

import (
	"image/color"
	"sync"
)

// Theme defines the colors the tab bar is drawn with.
// Colors are typically loaded from CFW theme presets (Cannoli).
type Theme struct {
	HighlightColor  color.RGBA // Active tab background
	AccentColor     color.RGBA // Active tab indicator
	TextColor       color.RGBA // Title text
	BackgroundColor color.RGBA // Inactive tab background
}

var (
	themeMu      sync.RWMutex
	currentTheme Theme
)

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}
