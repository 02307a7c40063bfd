package config

// Config is the top-level sitewire configuration, corresponding to .sitewire.yml.
// The same structure is embedded in the page as JSON (script#sitewire-config)
// to configure the wasm client, which has no files or environment.
type Config struct {
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	Hooks   HookConfig    `yaml:"hooks" koanf:"hooks"`
	Scroll  ScrollConfig  `yaml:"scroll" koanf:"scroll"`
	Preview PreviewConfig `yaml:"preview" koanf:"preview"`
	Audit   AuditConfig   `yaml:"audit" koanf:"audit"`
	Build   BuildConfig   `yaml:"build" koanf:"build"`
}

// ContactConfig controls the contact form submitter.
type ContactConfig struct {
	// Endpoint is the URL the serialized form is POSTed to.
	Endpoint string `yaml:"endpoint" koanf:"endpoint"`
	// TimeoutSeconds bounds one submission request.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	// ClearAfterSeconds auto-clears the success banner after this many
	// seconds. Zero disables auto-clearing.
	ClearAfterSeconds int `yaml:"clear_after_seconds" koanf:"clear_after_seconds"`
}

// HookConfig names the page elements each behavior binds to. Entries ending
// in "selector" are CSS selectors; the rest are element ids.
type HookConfig struct {
	MenuButton          string `yaml:"menu_button" koanf:"menu_button"`
	MenuPanel           string `yaml:"menu_panel" koanf:"menu_panel"`
	NavLinkSelector     string `yaml:"nav_link_selector" koanf:"nav_link_selector"`
	Year                string `yaml:"year" koanf:"year"`
	Form                string `yaml:"form" koanf:"form"`
	FormMessage         string `yaml:"form_message" koanf:"form_message"`
	FadeSectionSelector string `yaml:"fade_section_selector" koanf:"fade_section_selector"`
	SectionSelector     string `yaml:"section_selector" koanf:"section_selector"`
	HeaderSelector      string `yaml:"header_selector" koanf:"header_selector"`
}

// ScrollConfig tunes smooth scrolling and active-link tracking.
type ScrollConfig struct {
	// DesktopOffsetPx is subtracted from a scroll target's top when the
	// header element cannot be measured.
	DesktopOffsetPx int `yaml:"desktop_offset_px" koanf:"desktop_offset_px"`
	// MobileOffsetPx replaces the desktop offset below the breakpoint.
	MobileOffsetPx int `yaml:"mobile_offset_px" koanf:"mobile_offset_px"`
	// MobileBreakpointPx is the viewport width below which the mobile
	// offset applies.
	MobileBreakpointPx int `yaml:"mobile_breakpoint_px" koanf:"mobile_breakpoint_px"`
	// DebounceMillis is the quiet period before a scroll burst is evaluated.
	DebounceMillis int `yaml:"debounce_millis" koanf:"debounce_millis"`
	// HomeID is the section treated as current when scrolled above
	// everything else.
	HomeID string `yaml:"home_id" koanf:"home_id"`
}

// PreviewConfig holds dev preview server settings.
type PreviewConfig struct {
	Port int `yaml:"port" koanf:"port"`
	// Dir is the directory served; defaults to the build output.
	Dir string `yaml:"dir" koanf:"dir"`
	// Open launches the system browser on start.
	Open bool `yaml:"open" koanf:"open"`
	// AllowAllOrigins relaxes CORS to * (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// AuditConfig controls which pages the audit inspects.
type AuditConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// BuildConfig holds bundle step settings.
type BuildConfig struct {
	// WebDir is the directory of page assets copied into the bundle.
	WebDir string `yaml:"web_dir" koanf:"web_dir"`
	// OutDir receives the bundled site.
	OutDir string `yaml:"out_dir" koanf:"out_dir"`
}
