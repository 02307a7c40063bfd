package config

import (
	"fmt"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SITEWIRE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SITEWIRE_CONTACT_ENDPOINT ->
	// contact.endpoint, etc. Underscores after the first segment separate
	// section from key, so only the leading segment maps to a section.
	if err := k.Load(env.Provider("SITEWIRE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SITEWIRE_"))
		return strings.Replace(s, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// FromJSON merges a page-embedded JSON configuration blob over defaults.
// This is how the wasm client configures itself: the page carries the blob
// in a script tag, since the browser has neither files nor environment.
func FromJSON(raw []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(raw))) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(raw), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling embedded config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Contact.Endpoint == "" {
		return fmt.Errorf("contact.endpoint is required")
	}
	if c.Contact.TimeoutSeconds <= 0 {
		return fmt.Errorf("contact.timeout_seconds must be positive")
	}
	if c.Contact.ClearAfterSeconds < 0 {
		return fmt.Errorf("contact.clear_after_seconds must be non-negative")
	}

	if c.Hooks.Form == "" {
		return fmt.Errorf("hooks.form is required")
	}
	if c.Hooks.FormMessage == "" {
		return fmt.Errorf("hooks.form_message is required")
	}
	if c.Hooks.MenuButton == "" || c.Hooks.MenuPanel == "" {
		return fmt.Errorf("hooks.menu_button and hooks.menu_panel are required")
	}
	if c.Hooks.NavLinkSelector == "" {
		return fmt.Errorf("hooks.nav_link_selector is required")
	}
	if c.Hooks.SectionSelector == "" {
		return fmt.Errorf("hooks.section_selector is required")
	}

	if c.Scroll.DebounceMillis <= 0 {
		return fmt.Errorf("scroll.debounce_millis must be positive")
	}
	if c.Scroll.MobileBreakpointPx <= 0 {
		return fmt.Errorf("scroll.mobile_breakpoint_px must be positive")
	}
	if c.Scroll.DesktopOffsetPx < 0 || c.Scroll.MobileOffsetPx < 0 {
		return fmt.Errorf("scroll offsets must be non-negative")
	}

	if c.Preview.Port < 1 || c.Preview.Port > 65535 {
		return fmt.Errorf("preview.port must be between 1 and 65535")
	}

	return nil
}
