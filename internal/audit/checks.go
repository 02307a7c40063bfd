package audit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sitewire/sitewire/internal/config"
)

// maxExcerpt bounds the markup excerpt attached to a finding.
const maxExcerpt = 120

// checkPage runs every check against one parsed page.
func checkPage(doc *goquery.Document, file string, cfg *config.Config) []Finding {
	c := &checker{doc: doc, file: file, hooks: cfg.Hooks}

	c.checkDuplicateIDs()
	c.checkMenu()
	c.checkYear()
	c.checkForm()
	c.checkFade()
	c.checkNav()

	return c.findings
}

type checker struct {
	doc      *goquery.Document
	file     string
	hooks    config.HookConfig
	findings []Finding
}

func (c *checker) add(check string, sev Severity, msg string, sel *goquery.Selection) {
	f := Finding{File: c.file, Check: check, Severity: sev, Message: msg}
	if sel != nil && sel.Length() > 0 {
		f.Excerpt = excerpt(sel.First())
	}
	c.findings = append(c.findings, f)
}

// byID selects the element with the given id, tolerating ids that contain
// CSS metacharacters.
func (c *checker) byID(id string) *goquery.Selection {
	return c.doc.Find(fmt.Sprintf("[id=%q]", id))
}

// checkDuplicateIDs flags ids used more than once; duplicated ids make
// lookup results arbitrary.
func (c *checker) checkDuplicateIDs() {
	seen := make(map[string]int)
	c.doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		seen[id]++
	})
	for id, n := range seen {
		if n > 1 {
			c.add("duplicate-id", SeverityError,
				fmt.Sprintf("id %q appears %d times", id, n), c.byID(id))
		}
	}
}

func (c *checker) checkMenu() {
	button := c.byID(c.hooks.MenuButton)
	if button.Length() == 0 {
		c.add("menu-button", SeverityWarning,
			fmt.Sprintf("no element with id %q; the mobile menu will not bind", c.hooks.MenuButton), nil)
	} else if _, ok := button.Attr("aria-expanded"); !ok {
		c.add("menu-button", SeverityWarning,
			"menu button has no aria-expanded attribute in the markup", button)
	}

	if c.byID(c.hooks.MenuPanel).Length() == 0 {
		c.add("menu-panel", SeverityWarning,
			fmt.Sprintf("no element with id %q; the mobile menu will not bind", c.hooks.MenuPanel), nil)
	}
}

func (c *checker) checkYear() {
	if c.byID(c.hooks.Year).Length() == 0 {
		c.add("footer-year", SeverityWarning,
			fmt.Sprintf("no element with id %q; the footer year stays empty", c.hooks.Year), nil)
	}
}

func (c *checker) checkForm() {
	form := c.byID(c.hooks.Form)
	if form.Length() == 0 {
		c.add("contact-form", SeverityWarning,
			fmt.Sprintf("no form with id %q; the contact form will not bind", c.hooks.Form), nil)
		return
	}

	if c.byID(c.hooks.FormMessage).Length() == 0 {
		c.add("form-message", SeverityError,
			fmt.Sprintf("form present but message container %q is missing", c.hooks.FormMessage), nil)
	}

	if form.Find("[required]").Length() == 0 {
		c.add("form-required", SeverityWarning,
			"form has no required fields; every submission passes validation", form)
	}
	if form.Find(`input[type="email"]`).Length() == 0 {
		c.add("form-email", SeverityWarning,
			"form has no email field", form)
	}
	if form.Find(`button[type="submit"], input[type="submit"]`).Length() == 0 {
		c.add("form-submit", SeverityError,
			"form has no submit control", form)
	}

	// Each validated field needs an adjacent error node for inline
	// messages.
	form.Find(`[required], input[type="email"]`).Each(func(_ int, field *goquery.Selection) {
		if field.Parent().Find(".error-message").Length() == 0 {
			name, _ := field.Attr("name")
			c.add("field-error-node", SeverityWarning,
				fmt.Sprintf("field %q has no sibling .error-message element", name), field)
		}
	})
}

func (c *checker) checkFade() {
	if c.doc.Find(c.hooks.FadeSectionSelector).Length() == 0 {
		c.add("fade-sections", SeverityWarning,
			fmt.Sprintf("nothing matches %q; no sections will fade in", c.hooks.FadeSectionSelector), nil)
	}
}

// checkNav verifies every in-page nav link points at an existing section.
func (c *checker) checkNav() {
	links := c.doc.Find(c.hooks.NavLinkSelector)
	if links.Length() == 0 {
		c.add("nav-links", SeverityWarning,
			fmt.Sprintf("nothing matches %q; scrollspy will not bind", c.hooks.NavLinkSelector), nil)
		return
	}
	if c.doc.Find(c.hooks.SectionSelector).Length() == 0 {
		c.add("nav-sections", SeverityWarning,
			fmt.Sprintf("nothing matches %q; scrollspy will not bind", c.hooks.SectionSelector), nil)
	}

	links.Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "#") || len(href) < 2 {
			return
		}
		if c.byID(href[1:]).Length() == 0 {
			c.add("nav-target", SeverityError,
				fmt.Sprintf("nav link %q points at a missing section id", href), link)
		}
	})
}

// excerpt renders the selection's opening markup, truncated.
func excerpt(sel *goquery.Selection) string {
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	out = strings.Join(strings.Fields(out), " ")
	if len(out) > maxExcerpt {
		out = out[:maxExcerpt] + "..."
	}
	return out
}
