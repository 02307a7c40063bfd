// Package audit statically verifies that pages provide the elements the
// configured hooks expect, before anything ships.
package audit

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sitewire/sitewire/internal/config"
	"github.com/sitewire/sitewire/internal/progress"
)

// Severity grades a finding.
type Severity string

const (
	// SeverityError marks pages the client cannot fully bind to.
	SeverityError Severity = "error"
	// SeverityWarning marks degraded but workable pages.
	SeverityWarning Severity = "warning"
)

// Finding is one problem discovered on a page.
type Finding struct {
	File     string   `json:"file"`
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Excerpt  string   `json:"excerpt,omitempty"`
}

// Result is the outcome of one audit run.
type Result struct {
	Files    []string
	Findings []Finding
}

// HasErrors reports whether any finding is an error.
func (r *Result) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Run audits every page under root matching the configured include/exclude
// globs.
func Run(root string, cfg *config.Config, reporter progress.Reporter) (*Result, error) {
	pages, err := discover(root, cfg.Audit.Include, cfg.Audit.Exclude)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: pages}
	if reporter != nil {
		reporter.Start(len(pages))
		defer reporter.Finish()
	}

	for i, rel := range pages {
		if reporter != nil {
			reporter.Update(i+1, rel)
		}
		findings, err := AuditFile(filepath.Join(root, rel), rel, cfg)
		if err != nil {
			return nil, err
		}
		result.Findings = append(result.Findings, findings...)
	}
	return result, nil
}

// AuditFile audits a single page on disk. rel is the path reported in
// findings.
func AuditFile(path, rel string, cfg *config.Config) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("audit: parse %s: %w", path, err)
	}
	return checkPage(doc, rel, cfg), nil
}

// discover walks root and returns the relative paths of pages passing the
// include/exclude filters, in lexical order.
func discover(root string, include, exclude []string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("audit: resolve root: %w", err)
	}

	var pages []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != abs {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		if !matchesInclude(rel, include) || matchesExclude(rel, exclude) {
			return nil
		}
		pages = append(pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("audit: walk %s: %w", root, err)
	}
	return pages, nil
}
