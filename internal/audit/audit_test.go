package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sitewire/sitewire/internal/config"
	"github.com/sitewire/sitewire/web"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func findingChecks(findings []Finding) map[string]int {
	out := make(map[string]int)
	for _, f := range findings {
		out[f.Check]++
	}
	return out
}

func TestShippedPageIsClean(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", string(web.Index()))

	result, err := Run(dir, config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Findings) != 0 {
		t.Errorf("shipped page should audit clean, got %d findings: %+v", len(result.Findings), result.Findings)
	}
	if result.HasErrors() {
		t.Error("HasErrors() should be false for a clean page")
	}
}

func TestBrokenPageFindings(t *testing.T) {
	const page = `<html><body>
<header class="site-header">
  <a href="#home" class="nav-link">Home</a>
  <a href="#missing" class="nav-link">Nowhere</a>
</header>
<button id="menu-toggle">&#9776;</button>
<main>
  <section id="home"></section>
  <section id="home"></section>
</main>
<form id="contact-form">
  <input type="text" name="name" required>
</form>
</body></html>`

	dir := t.TempDir()
	writePage(t, dir, "index.html", page)

	result, err := Run(dir, config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	checks := findingChecks(result.Findings)
	expected := map[string]int{
		"duplicate-id":     1, // id "home" twice
		"menu-button":      1, // no aria-expanded
		"menu-panel":       1, // missing
		"footer-year":      1, // missing
		"form-message":     1, // missing container
		"form-email":       1, // no email field
		"form-submit":      1, // no submit control
		"field-error-node": 1, // name field has no error node
		"fade-sections":    1, // nothing fades
		"nav-target":       1, // #missing
	}
	for check, want := range expected {
		if checks[check] != want {
			t.Errorf("check %q: got %d findings, want %d", check, checks[check], want)
		}
	}
	if !result.HasErrors() {
		t.Error("HasErrors() should be true (duplicate-id and nav-target are errors)")
	}
}

func TestRunHonorsIncludeExclude(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", string(web.Index()))
	writePage(t, dir, "pages/about.html", string(web.Index()))
	writePage(t, dir, "dist/index.html", string(web.Index()))
	writePage(t, dir, "notes.txt", "not a page")

	cfg := config.DefaultConfig()
	result, err := Run(dir, cfg, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{"index.html", "pages/about.html"}
	if len(result.Files) != len(want) {
		t.Fatalf("audited files = %v, want %v", result.Files, want)
	}
	for i, f := range want {
		if result.Files[i] != f {
			t.Errorf("files[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"index.html", "**/*.html", true},
		{"pages/deep/about.html", "**/*.html", true},
		{"styles.css", "**/*.html", false},
		{"dist/index.html", "dist/**", true},
		{"node_modules/pkg/x.html", "node_modules/**", true},
	}
	for _, tt := range tests {
		if got := matchesAny(tt.path, []string{tt.pattern}); got != tt.want {
			t.Errorf("matchesAny(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}
