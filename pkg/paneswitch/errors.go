package paneswitch

import (
	"errors"
	"fmt"
)

// Sentinel errors for descriptor and binding problems.
var (
	// ErrUnknownView indicates a view name that is not part of the declared view set.
	ErrUnknownView = errors.New("unknown view")

	// ErrNoViews indicates a descriptor that declares neither views nor a default.
	ErrNoViews = errors.New("no views declared")

	// ErrNoDefault indicates a descriptor without a default view.
	ErrNoDefault = errors.New("no default view")

	// ErrUnknownButton indicates a binding to a button name paneswitch does not know.
	ErrUnknownButton = errors.New("unknown button")
)

// ConfigError reports a problem loading or validating a view descriptor.
// The navigation core itself never fails; errors only come from the edges
// that read files or devices.
type ConfigError struct {
	Op   string // Operation that failed (e.g., "read", "decode", "validate")
	Path string // Descriptor path, empty when parsing bytes
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("paneswitch: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("paneswitch: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op, path string, err error) *ConfigError {
	return &ConfigError{Op: op, Path: path, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
