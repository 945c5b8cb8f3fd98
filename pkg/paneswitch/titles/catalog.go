// Package titles resolves human-readable, localized titles for view identifiers.
//
// Message files are go-i18n TOML files whose message ids are "view.<name>":
//
//	# active.de.toml
//	"view.settings" = "Einstellungen"
//
// Views without a message fall back to their name, title-cased.
package titles

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessagePrefix prefixes every view title message id.
const MessagePrefix = "view."

// Catalog holds view title translations.
type Catalog struct {
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
	fallback  language.Tag
	overrides map[string]string
}

// NewCatalog creates a catalog whose source language is defaultLanguage.
func NewCatalog(defaultLanguage language.Tag) *Catalog {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, defaultLanguage.String()),
		tag:       defaultLanguage,
		fallback:  defaultLanguage,
		overrides: make(map[string]string),
	}
}

// AddMessages parses a message file held in memory. The language is taken from
// the file name, e.g. "active.de.toml".
func (c *Catalog) AddMessages(data []byte, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("titles: parse %s: %w", name, err)
	}
	return nil
}

// LoadMessageFile reads and parses a message file from disk.
func (c *Catalog) LoadMessageFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("titles: %w", err)
	}
	return c.AddMessages(data, path)
}

// Use selects the preferred languages, most preferred first. Accept-Language
// style strings ("de-CH,de;q=0.9") are accepted too.
func (c *Catalog) Use(langs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.localizer = i18n.NewLocalizer(c.bundle, langs...)

	tag := c.fallback
	if len(langs) > 0 {
		if tags, _, err := language.ParseAcceptLanguage(strings.Join(langs, ",")); err == nil && len(tags) > 0 {
			tag = tags[0]
		}
	}
	c.tag = tag
}

// SetOverride pins the title of view regardless of language.
func (c *Catalog) SetOverride(view, title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[view] = title
}

// Title returns the title of view in the selected language.
func (c *Catalog) Title(view string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if t, ok := c.overrides[view]; ok {
		return t
	}

	title, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: MessagePrefix + view})
	if err == nil && title != "" {
		return title
	}

	return Humanize(view, c.tag)
}

// Humanize turns a view identifier such as "wifi_settings" into "Wifi Settings".
func Humanize(view string, tag language.Tag) string {
	words := strings.FieldsFunc(view, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	return cases.Title(tag).String(strings.Join(words, " "))
}
