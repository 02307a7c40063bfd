package report

import (
	"strings"
	"testing"

	"github.com/sitewire/sitewire/internal/audit"
)

func sampleResult() *audit.Result {
	return &audit.Result{
		Files: []string{"index.html", "about.html"},
		Findings: []audit.Finding{
			{
				File:     "index.html",
				Check:    "nav-target",
				Severity: audit.SeverityError,
				Message:  `nav link "#missing" points at a missing section id`,
				Excerpt:  `<a href="#missing" class="nav-link">Nowhere</a>`,
			},
			{
				File:     "about.html",
				Check:    "footer-year",
				Severity: audit.SeverityWarning,
				Message:  `no element with id "year"; the footer year stays empty`,
			},
		},
	}
}

func TestText(t *testing.T) {
	out := Text(sampleResult())

	for _, want := range []string{
		"Audited 2 file(s)",
		"index.html",
		"[error] nav-target",
		"[warning] footer-year",
		"1 error(s), 1 warning(s).",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text() missing %q in:\n%s", want, out)
		}
	}
}

func TestTextNoFindings(t *testing.T) {
	out := Text(&audit.Result{Files: []string{"index.html"}})
	if !strings.Contains(out, "No findings.") {
		t.Errorf("Text() should report no findings, got:\n%s", out)
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleResult())

	for _, want := range []string{
		"# Page audit",
		"## `index.html`",
		"**error** `nav-target`",
		"```html",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, out)
		}
	}
	// Files are sorted: about.html before index.html.
	if strings.Index(out, "about.html") > strings.Index(out, "index.html") {
		t.Error("Markdown() sections should be sorted by file")
	}
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleResult(), "Audit report")
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Audit report</title>",
		"Page audit",
		"nav-target",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML() missing %q", want)
		}
	}
}
