// Package reveal fades sections in the first time they scroll into view.
package reveal

import (
	"errors"

	"github.com/sitewire/sitewire/internal/dom"
)

// visibleClass triggers the CSS fade-in transition.
const visibleClass = "visible"

// threshold is the visible share of a section that triggers its reveal.
const threshold = 0.15

var (
	// ErrNoSections is returned when nothing on the page matches the fade
	// selector.
	ErrNoSections = errors.New("reveal: no fade-in sections on the page")
	// ErrUnsupported is returned when the platform cannot observe
	// intersections. The page simply stays fully visible.
	ErrUnsupported = errors.New("reveal: intersection observation unavailable")
)

// Revealer watches fade-in sections. Each section is revealed once and never
// re-hidden.
type Revealer struct {
	obs dom.Observer
}

// Bind observes every element matching selector. A section crossing the
// threshold gains the visible class and is dropped from the watched set.
func Bind(doc dom.Document, selector string) (*Revealer, error) {
	sections := doc.Find(selector)
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	var obs dom.Observer
	obs, ok := doc.NewObserver(threshold, func(el dom.Element) {
		el.AddClass(visibleClass)
		obs.Unobserve(el)
	})
	if !ok {
		return nil, ErrUnsupported
	}

	for _, s := range sections {
		obs.Observe(s)
	}
	return &Revealer{obs: obs}, nil
}

// Close stops observing everything.
func (r *Revealer) Close() {
	r.obs.Disconnect()
}
