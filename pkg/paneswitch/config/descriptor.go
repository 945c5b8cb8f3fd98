// Package config loads view descriptors: the declared view set, the default view,
// button bindings and title overrides for one navigation context.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/constants"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/navigation"
)

// Format is a descriptor file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported descriptor extension %q", filepath.Ext(path))
	}
}

// Descriptor declares the views of one navigation context.
//
//	default = "home"
//	views = ["home", "settings", "about"]
//	language = "de"
//
//	[bindings]
//	Start = "settings"
//	Menu = "home"
//
//	[titles]
//	about = "Über"
type Descriptor struct {
	Views    []string          `toml:"views" yaml:"views"`
	Default  string            `toml:"default" yaml:"default"`
	Language string            `toml:"language" yaml:"language"`
	Bindings map[string]string `toml:"bindings" yaml:"bindings"`
	Titles   map[string]string `toml:"titles" yaml:"titles"`
}

// Load reads and validates the descriptor at path.
func Load(path string) (*Descriptor, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, paneswitch.NewConfigError("load", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, paneswitch.NewConfigError("read", path, err)
	}

	d, err := decode(data, format)
	if err != nil {
		return nil, paneswitch.NewConfigError("decode", path, err)
	}

	if err := d.Validate(); err != nil {
		return nil, paneswitch.NewConfigError("validate", path, err)
	}

	return d, nil
}

// Parse decodes and validates a descriptor held in memory.
func Parse(data []byte, format Format) (*Descriptor, error) {
	d, err := decode(data, format)
	if err != nil {
		return nil, paneswitch.NewConfigError("decode", "", err)
	}
	if err := d.Validate(); err != nil {
		return nil, paneswitch.NewConfigError("validate", "", err)
	}
	return d, nil
}

func decode(data []byte, format Format) (*Descriptor, error) {
	d := &Descriptor{}

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(d); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported descriptor format %q", format)
	}

	return d, nil
}

// Validate checks the descriptor. A default missing from Views is fine: it is
// added to the view set when the controller is built.
func (d *Descriptor) Validate() error {
	if len(d.Views) == 0 && d.Default == "" {
		return paneswitch.ErrNoViews
	}
	if strings.TrimSpace(d.Default) == "" {
		return paneswitch.ErrNoDefault
	}

	var errs []error
	for i, v := range d.Views {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("views[%d]: empty view name", i))
		}
	}

	for button, target := range d.Bindings {
		if _, ok := constants.ParseVirtualButton(button); !ok {
			errs = append(errs, fmt.Errorf("bindings: %w %q", paneswitch.ErrUnknownButton, button))
		}
		if !d.declares(target) {
			errs = append(errs, fmt.Errorf("bindings.%s: %w %q", button, paneswitch.ErrUnknownView, target))
		}
	}

	for view := range d.Titles {
		if !d.declares(view) {
			errs = append(errs, fmt.Errorf("titles: %w %q", paneswitch.ErrUnknownView, view))
		}
	}

	return errors.Join(errs...)
}

// AllViews returns the declared views plus the default, without duplicates.
func (d *Descriptor) AllViews() []string {
	seen := make(map[string]struct{}, len(d.Views)+1)
	out := make([]string, 0, len(d.Views)+1)
	for _, v := range append(append([]string{}, d.Views...), d.Default) {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ButtonBindings resolves the binding table to virtual buttons.
// Call after Validate; unknown button names are skipped.
func (d *Descriptor) ButtonBindings() map[constants.VirtualButton]string {
	out := make(map[constants.VirtualButton]string, len(d.Bindings))
	for name, target := range d.Bindings {
		if b, ok := constants.ParseVirtualButton(name); ok {
			out[b] = target
		}
	}
	return out
}

func (d *Descriptor) declares(view string) bool {
	if view == d.Default {
		return true
	}
	for _, v := range d.Views {
		if v == view {
			return true
		}
	}
	return false
}

// NewController builds a navigation controller from the descriptor.
func NewController[V ~string](d *Descriptor, opts ...navigation.Option) (*navigation.Controller[V], error) {
	if err := d.Validate(); err != nil {
		return nil, paneswitch.NewConfigError("validate", "", err)
	}

	views := make([]V, 0, len(d.Views))
	for _, v := range d.Views {
		views = append(views, V(v))
	}

	return navigation.New(views, V(d.Default), opts...), nil
}
