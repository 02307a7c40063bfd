// Package report renders audit findings for humans: plain text for the
// terminal, markdown for CI comments, and a standalone HTML page.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/sitewire/sitewire/internal/audit"
)

// Text renders findings as plain terminal output, grouped by file.
func Text(result *audit.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Audited %d file(s)\n", len(result.Files))

	if len(result.Findings) == 0 {
		b.WriteString("No findings.\n")
		return b.String()
	}

	for _, file := range filesWithFindings(result) {
		fmt.Fprintf(&b, "\n%s\n", file)
		for _, f := range result.Findings {
			if f.File != file {
				continue
			}
			fmt.Fprintf(&b, "  [%s] %s: %s\n", f.Severity, f.Check, f.Message)
			if f.Excerpt != "" {
				fmt.Fprintf(&b, "      %s\n", f.Excerpt)
			}
		}
	}
	fmt.Fprintf(&b, "\n%s\n", summary(result))
	return b.String()
}

// Markdown renders findings as a markdown report with per-file sections and
// fenced markup excerpts.
func Markdown(result *audit.Result) string {
	var b strings.Builder
	b.WriteString("# Page audit\n\n")
	fmt.Fprintf(&b, "Audited %d file(s). %s\n", len(result.Files), summary(result))

	for _, file := range filesWithFindings(result) {
		fmt.Fprintf(&b, "\n## `%s`\n\n", file)
		for _, f := range result.Findings {
			if f.File != file {
				continue
			}
			fmt.Fprintf(&b, "- **%s** `%s` — %s\n", f.Severity, f.Check, f.Message)
			if f.Excerpt != "" {
				fmt.Fprintf(&b, "\n  ```html\n  %s\n  ```\n", f.Excerpt)
			}
		}
	}
	return b.String()
}

// HTML renders the markdown report into a standalone page, with excerpts
// syntax-highlighted.
func HTML(result *audit.Result, title string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(result)), &body); err != nil {
		return "", fmt.Errorf("report: render markdown: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	page.WriteString("<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", title)
	page.WriteString("<style>body{font-family:sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;line-height:1.5}code{background:#f4f4f4;padding:0.1em 0.3em;border-radius:3px}pre{overflow-x:auto;padding:0.75rem;border-radius:6px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// summary counts findings by severity.
func summary(result *audit.Result) string {
	errs, warns := 0, 0
	for _, f := range result.Findings {
		switch f.Severity {
		case audit.SeverityError:
			errs++
		case audit.SeverityWarning:
			warns++
		}
	}
	return fmt.Sprintf("%d error(s), %d warning(s).", errs, warns)
}

// filesWithFindings returns the distinct files that have findings, sorted.
func filesWithFindings(result *audit.Result) []string {
	seen := make(map[string]bool)
	var files []string
	for _, f := range result.Findings {
		if !seen[f.File] {
			seen[f.File] = true
			files = append(files, f.File)
		}
	}
	sort.Strings(files)
	return files
}
