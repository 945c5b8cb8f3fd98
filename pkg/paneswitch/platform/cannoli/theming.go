// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default colors.
func InitCannoliTheme() internal.Theme {
	return internal.Theme{
		HighlightColor:  internal.HexToColor(0xFFFFFF),
		AccentColor:     internal.HexToColor(0x008080),
		TextColor:       internal.HexToColor(0xFFFFFF),
		BackgroundColor: internal.HexToColor(0x000000),
	}
}
