// Package scrollspy intercepts in-page anchor clicks for smooth scrolling
// and keeps the navigation's active link in step with the scroll position.
package scrollspy

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sitewire/sitewire/internal/dom"
)

// activeClass marks the nav link of the section currently in view.
const activeClass = "active"

// ErrMissingHooks is returned when the page has no nav links or no id-tagged
// sections.
var ErrMissingHooks = errors.New("scrollspy: no nav links or sections on the page")

// Options configures a Spy.
type Options struct {
	// NavLinkSelector matches every navigation link, desktop and mobile.
	NavLinkSelector string
	// SectionSelector matches the id-tagged page sections in document order.
	SectionSelector string
	// HeaderSelector matches the fixed header whose measured height is the
	// desktop scroll offset. Optional.
	HeaderSelector string

	// DesktopOffsetPx is used when the header cannot be measured.
	DesktopOffsetPx int
	// MobileOffsetPx replaces the desktop offset below the breakpoint.
	MobileOffsetPx int
	// MobileBreakpointPx is the viewport width where mobile layout begins.
	MobileBreakpointPx int

	// Debounce is the quiet period before a scroll burst is evaluated.
	Debounce time.Duration
	// HomeID is scrolled to top-of-page and marked current when nothing
	// else qualifies.
	HomeID string

	// MenuPanel, when set, is the mobile menu: clicking a link inside it
	// invokes CloseMenu after scrolling.
	MenuPanel dom.Element
	CloseMenu func()
}

// Spy owns the debounced scroll evaluation. The active link set is derived
// from the scroll position on every evaluation; nothing is cached between
// runs.
type Spy struct {
	doc      dom.Document
	win      dom.Window
	links    []dom.Element
	sections []dom.Element
	header   dom.Element
	opts     Options
	deb      *debouncer

	// mu serializes evaluations so timer-goroutine runs never interleave.
	mu sync.Mutex
}

// Bind wires click interception and the debounced scroll listener, then
// evaluates once to establish the initial active link.
func Bind(doc dom.Document, opts Options) (*Spy, error) {
	links := doc.Find(opts.NavLinkSelector)
	sections := doc.Find(opts.SectionSelector)
	if len(links) == 0 || len(sections) == 0 {
		return nil, ErrMissingHooks
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 100 * time.Millisecond
	}

	s := &Spy{
		doc:      doc,
		win:      doc.Window(),
		links:    links,
		sections: sections,
		opts:     opts,
		deb:      newDebouncer(opts.Debounce),
	}
	if opts.HeaderSelector != "" {
		s.header = doc.First(opts.HeaderSelector)
	}

	for _, link := range links {
		link := link
		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "#") || len(href) < 2 {
			continue
		}
		id := href[1:]
		link.On(dom.Click, func(ev dom.Event) {
			ev.PreventDefault()
			s.scrollToAnchor(id)
			if s.opts.MenuPanel != nil && s.opts.CloseMenu != nil && s.opts.MenuPanel.Contains(link) {
				s.opts.CloseMenu()
			}
		})
	}

	s.win.OnScroll(func() {
		s.deb.Trigger(s.evaluate)
	})

	s.evaluate()
	return s, nil
}

// Close cancels any pending evaluation.
func (s *Spy) Close() {
	s.deb.Stop()
}

// scrollToAnchor animates the viewport to the section with the given id.
// The home anchor goes to the very top.
func (s *Spy) scrollToAnchor(id string) {
	if id == s.opts.HomeID {
		s.win.ScrollTo(0, true)
		return
	}
	target := s.doc.ByID(id)
	if target == nil {
		return
	}
	top := target.OffsetTop() - s.headerOffset()
	if top < 0 {
		top = 0
	}
	s.win.ScrollTo(top, true)
}

// headerOffset is the height reserved for the fixed header at the current
// viewport width.
func (s *Spy) headerOffset() int {
	if s.win.ViewportWidth() < s.opts.MobileBreakpointPx {
		return s.opts.MobileOffsetPx
	}
	if s.header != nil {
		if h := s.header.OffsetHeight(); h > 0 {
			return h
		}
	}
	return s.opts.DesktopOffsetPx
}

// evaluate recomputes the current section from the scroll position and marks
// its nav link(s) active. The current section is the last one in document
// order whose adjusted top the scroll position has reached; with none
// reached, the home section is current while it is first on the page.
func (s *Spy) evaluate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	y := s.win.ScrollY()
	offset := s.headerOffset()

	current := ""
	for _, sec := range s.sections {
		if sec.OffsetTop()-offset <= y {
			current = sec.ID()
		}
	}
	if current == "" && s.sections[0].ID() == s.opts.HomeID {
		current = s.opts.HomeID
	}

	for _, link := range s.links {
		href, _ := link.Attr("href")
		if current != "" && href == "#"+current {
			link.AddClass(activeClass)
		} else {
			link.RemoveClass(activeClass)
		}
	}
}
