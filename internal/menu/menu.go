// Package menu implements the mobile navigation menu toggler.
package menu

import (
	"errors"

	"github.com/sitewire/sitewire/internal/dom"
)

// ErrMissingHooks is returned when the trigger button or panel is not on the
// page.
var ErrMissingHooks = errors.New("menu: trigger button or panel not found")

const (
	// openClass makes the panel visible.
	openClass = "open"

	glyphClosed = "☰" // hamburger
	glyphOpen   = "✕" // close
)

// Menu toggles the mobile navigation panel. Open state lives in the panel's
// class list; the button glyph and aria-expanded flag are derived from it so
// they can never drift apart.
type Menu struct {
	button dom.Element
	panel  dom.Element
}

// Bind wires the menu against the page: the button toggles the panel, and
// any link inside the panel closes it. The initial glyph and ARIA state are
// synced to the panel's current visibility.
func Bind(doc dom.Document, buttonID, panelID string) (*Menu, error) {
	button := doc.ByID(buttonID)
	panel := doc.ByID(panelID)
	if button == nil || panel == nil {
		return nil, ErrMissingHooks
	}

	m := &Menu{button: button, panel: panel}

	button.On(dom.Click, func(dom.Event) {
		m.Toggle()
	})

	// Links close the menu regardless of where they navigate.
	for _, link := range panel.Find("a") {
		link.On(dom.Click, func(dom.Event) {
			m.Close()
		})
	}

	m.apply()
	return m, nil
}

// IsOpen reports whether the panel is currently visible.
func (m *Menu) IsOpen() bool {
	return m.panel.HasClass(openClass)
}

// Toggle flips the panel between open and closed.
func (m *Menu) Toggle() {
	if m.IsOpen() {
		m.panel.RemoveClass(openClass)
	} else {
		m.panel.AddClass(openClass)
	}
	m.apply()
}

// Close hides the panel. Closing an already-closed menu is a no-op.
func (m *Menu) Close() {
	m.panel.RemoveClass(openClass)
	m.apply()
}

// apply syncs the button glyph and aria-expanded flag with the panel's
// visibility.
func (m *Menu) apply() {
	if m.IsOpen() {
		m.button.SetAttr("aria-expanded", "true")
		m.button.SetText(glyphOpen)
		return
	}
	m.button.SetAttr("aria-expanded", "false")
	m.button.SetText(glyphClosed)
}
