// Package app boots every page behavior against a document. A behavior
// whose hooks are missing is logged and skipped; the rest of the page stays
// interactive.
package app

import (
	"log"
	"time"

	"github.com/sitewire/sitewire/internal/config"
	"github.com/sitewire/sitewire/internal/contact"
	"github.com/sitewire/sitewire/internal/dom"
	"github.com/sitewire/sitewire/internal/footer"
	"github.com/sitewire/sitewire/internal/menu"
	"github.com/sitewire/sitewire/internal/reveal"
	"github.com/sitewire/sitewire/internal/scrollspy"
)

// App holds the bound behaviors. Fields are nil when the page lacks the
// behavior's hooks.
type App struct {
	Menu     *menu.Menu
	Form     *contact.Form
	Revealer *reveal.Revealer
	Spy      *scrollspy.Spy
}

// Boot wires all five behaviors per the configuration.
func Boot(doc dom.Document, cfg *config.Config) *App {
	a := &App{}

	if err := footer.Stamp(doc, cfg.Hooks.Year, nil); err != nil {
		log.Printf("app: skipping footer year: %v", err)
	}

	m, err := menu.Bind(doc, cfg.Hooks.MenuButton, cfg.Hooks.MenuPanel)
	if err != nil {
		log.Printf("app: skipping mobile menu: %v", err)
	} else {
		a.Menu = m
	}

	form, err := contact.Bind(doc, cfg.Hooks.Form, cfg.Hooks.FormMessage, contact.Options{
		Endpoint:   cfg.Contact.Endpoint,
		Timeout:    time.Duration(cfg.Contact.TimeoutSeconds) * time.Second,
		ClearAfter: time.Duration(cfg.Contact.ClearAfterSeconds) * time.Second,
	})
	if err != nil {
		log.Printf("app: skipping contact form: %v", err)
	} else {
		a.Form = form
	}

	r, err := reveal.Bind(doc, cfg.Hooks.FadeSectionSelector)
	if err != nil {
		log.Printf("app: skipping fade-in: %v", err)
	} else {
		a.Revealer = r
	}

	spyOpts := scrollspy.Options{
		NavLinkSelector:    cfg.Hooks.NavLinkSelector,
		SectionSelector:    cfg.Hooks.SectionSelector,
		HeaderSelector:     cfg.Hooks.HeaderSelector,
		DesktopOffsetPx:    cfg.Scroll.DesktopOffsetPx,
		MobileOffsetPx:     cfg.Scroll.MobileOffsetPx,
		MobileBreakpointPx: cfg.Scroll.MobileBreakpointPx,
		Debounce:           time.Duration(cfg.Scroll.DebounceMillis) * time.Millisecond,
		HomeID:             cfg.Scroll.HomeID,
	}
	if a.Menu != nil {
		spyOpts.MenuPanel = doc.ByID(cfg.Hooks.MenuPanel)
		spyOpts.CloseMenu = a.Menu.Close
	}
	spy, err := scrollspy.Bind(doc, spyOpts)
	if err != nil {
		log.Printf("app: skipping scrollspy: %v", err)
	} else {
		a.Spy = spy
	}

	return a
}

// Close releases timers and observers held by the bound behaviors.
func (a *App) Close() {
	if a.Spy != nil {
		a.Spy.Close()
	}
	if a.Revealer != nil {
		a.Revealer.Close()
	}
	if a.Form != nil {
		a.Form.Close()
	}
}
