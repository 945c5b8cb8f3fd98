// Package constants defines shared constants and types used throughout paneswitch.
package constants

import (
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar is the environment variable that overrides the application log level.
const LogLevelEnvVar = "LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Descriptor files bind buttons to views by name.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var buttonNames = [...]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if vb < 0 || int(vb) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[vb]
}

// ParseVirtualButton looks up a button by name, ignoring case.
// Unassigned and unknown names report false.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for i, n := range buttonNames {
		if i != int(VirtualButtonUnassigned) && strings.EqualFold(n, strings.TrimSpace(name)) {
			return VirtualButton(i), true
		}
	}
	return VirtualButtonUnassigned, false
}
