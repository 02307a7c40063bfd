package config

// DefaultExcludes are glob patterns the audit skips by default.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
	"vendor/**",
}

// DefaultConfig returns a Config with sensible defaults. The hook names match
// the page shipped under web/.
func DefaultConfig() *Config {
	return &Config{
		Contact: ContactConfig{
			Endpoint:          "http://localhost:3000/api/contact",
			TimeoutSeconds:    15,
			ClearAfterSeconds: 0,
		},
		Hooks: HookConfig{
			MenuButton:          "menu-toggle",
			MenuPanel:           "mobile-menu",
			NavLinkSelector:     "a.nav-link",
			Year:                "year",
			Form:                "contact-form",
			FormMessage:         "form-message",
			FadeSectionSelector: "section.fade-in",
			SectionSelector:     "main section[id]",
			HeaderSelector:      "header.site-header",
		},
		Scroll: ScrollConfig{
			DesktopOffsetPx:    80,
			MobileOffsetPx:     64,
			MobileBreakpointPx: 768,
			DebounceMillis:     100,
			HomeID:             "home",
		},
		Preview: PreviewConfig{
			Port: 4173,
			Dir:  "dist",
		},
		Audit: AuditConfig{
			Include: []string{"**/*.html"},
			Exclude: DefaultExcludes,
		},
		Build: BuildConfig{
			WebDir: "web",
			OutDir: "dist",
		},
	}
}
