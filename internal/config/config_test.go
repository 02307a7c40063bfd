package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Contact.Endpoint != "http://localhost:3000/api/contact" {
		t.Errorf("unexpected default contact endpoint: %q", cfg.Contact.Endpoint)
	}
	if cfg.Contact.ClearAfterSeconds != 0 {
		t.Errorf("auto-clear should be disabled by default, got %d", cfg.Contact.ClearAfterSeconds)
	}
	if cfg.Scroll.DebounceMillis != 100 {
		t.Errorf("expected default debounce 100ms, got %d", cfg.Scroll.DebounceMillis)
	}
	if cfg.Scroll.HomeID != "home" {
		t.Errorf("expected default home id %q, got %q", "home", cfg.Scroll.HomeID)
	}
	if cfg.Preview.Port != 4173 {
		t.Errorf("expected default preview port 4173, got %d", cfg.Preview.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sitewire.yml")

	original := DefaultConfig()
	original.Contact.Endpoint = "https://example.com/api/contact"
	original.Contact.ClearAfterSeconds = 7
	original.Scroll.DesktopOffsetPx = 96
	original.Hooks.Form = "signup-form"
	original.Audit.Include = []string{"pages/**/*.html", "index.html"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Contact.Endpoint != original.Contact.Endpoint {
		t.Errorf("contact.endpoint: got %q, want %q", loaded.Contact.Endpoint, original.Contact.Endpoint)
	}
	if loaded.Contact.ClearAfterSeconds != original.Contact.ClearAfterSeconds {
		t.Errorf("contact.clear_after_seconds: got %d, want %d", loaded.Contact.ClearAfterSeconds, original.Contact.ClearAfterSeconds)
	}
	if loaded.Scroll.DesktopOffsetPx != original.Scroll.DesktopOffsetPx {
		t.Errorf("scroll.desktop_offset_px: got %d, want %d", loaded.Scroll.DesktopOffsetPx, original.Scroll.DesktopOffsetPx)
	}
	if loaded.Hooks.Form != original.Hooks.Form {
		t.Errorf("hooks.form: got %q, want %q", loaded.Hooks.Form, original.Hooks.Form)
	}
	if len(loaded.Audit.Include) != len(original.Audit.Include) {
		t.Fatalf("audit.include length: got %d, want %d", len(loaded.Audit.Include), len(original.Audit.Include))
	}
	for i, v := range loaded.Audit.Include {
		if v != original.Audit.Include[i] {
			t.Errorf("audit.include[%d]: got %q, want %q", i, v, original.Audit.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Hooks.Form != "contact-form" {
		t.Errorf("expected default form hook, got %q", cfg.Hooks.Form)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override the endpoint via env var.
	os.Setenv("SITEWIRE_CONTACT_ENDPOINT", "https://override.test/contact")
	defer os.Unsetenv("SITEWIRE_CONTACT_ENDPOINT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Contact.Endpoint != "https://override.test/contact" {
		t.Errorf("env override failed: got %q", loaded.Contact.Endpoint)
	}
}

func TestFromJSON(t *testing.T) {
	raw := []byte(`{
		"contact": {"endpoint": "/api/messages", "clear_after_seconds": 7},
		"scroll": {"home_id": "top"}
	}`)

	cfg, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if cfg.Contact.Endpoint != "/api/messages" {
		t.Errorf("contact.endpoint: got %q, want %q", cfg.Contact.Endpoint, "/api/messages")
	}
	if cfg.Contact.ClearAfterSeconds != 7 {
		t.Errorf("contact.clear_after_seconds: got %d, want 7", cfg.Contact.ClearAfterSeconds)
	}
	if cfg.Scroll.HomeID != "top" {
		t.Errorf("scroll.home_id: got %q, want %q", cfg.Scroll.HomeID, "top")
	}
	// Untouched keys keep defaults.
	if cfg.Scroll.DebounceMillis != 100 {
		t.Errorf("scroll.debounce_millis should keep default, got %d", cfg.Scroll.DebounceMillis)
	}
	if cfg.Hooks.MenuButton != "menu-toggle" {
		t.Errorf("hooks.menu_button should keep default, got %q", cfg.Hooks.MenuButton)
	}
}

func TestFromJSONEmpty(t *testing.T) {
	cfg, err := FromJSON(nil)
	if err != nil {
		t.Fatalf("FromJSON(nil) failed: %v", err)
	}
	if cfg.Contact.Endpoint != DefaultConfig().Contact.Endpoint {
		t.Errorf("empty blob should yield defaults, got %q", cfg.Contact.Endpoint)
	}
}

func TestFromJSONMalformed(t *testing.T) {
	if _, err := FromJSON([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.Endpoint = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty contact endpoint")
	}
}

func TestValidateZeroTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero timeout")
	}
}

func TestValidateNegativeClearAfter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.ClearAfterSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative clear_after_seconds")
	}
}

func TestValidateMissingHooks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hooks.MenuPanel = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing menu panel hook")
	}
}

func TestValidateZeroDebounce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scroll.DebounceMillis = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero debounce")
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preview.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.html", []string{"**/*.html"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
