package domtest

import (
	"golang.org/x/net/html"

	"github.com/sitewire/sitewire/internal/dom"
)

// Observer is a scriptable intersection observer. Tests trigger it through
// Doc.Intersect.
type Observer struct {
	doc       *Doc
	threshold float64
	fn        func(dom.Element)
	watched   map[*html.Node]bool
}

// NewObserver builds a scriptable observer. ok is false after
// DisableObservers, modelling a platform without intersection support.
func (d *Doc) NewObserver(threshold float64, fn func(dom.Element)) (dom.Observer, bool) {
	if d.noObservers {
		return nil, false
	}
	o := &Observer{
		doc:       d,
		threshold: threshold,
		fn:        fn,
		watched:   make(map[*html.Node]bool),
	}
	d.observers = append(d.observers, o)
	return o, true
}

// DisableObservers makes subsequent NewObserver calls report unsupported.
func (d *Doc) DisableObservers() {
	d.noObservers = true
}

// Intersect simulates the first match of selector becoming ratio visible.
// Observers watching it fire when ratio meets their threshold.
func (d *Doc) Intersect(selector string, ratio float64) {
	e, ok := d.First(selector).(*element)
	if !ok || e == nil {
		return
	}
	for _, o := range d.observers {
		if o.watched[e.node] && ratio >= o.threshold {
			o.fn(&element{doc: d, node: e.node})
		}
	}
}

// Watched reports whether any observer is currently watching the first
// match of selector.
func (d *Doc) Watched(selector string) bool {
	e, ok := d.First(selector).(*element)
	if !ok || e == nil {
		return false
	}
	for _, o := range d.observers {
		if o.watched[e.node] {
			return true
		}
	}
	return false
}

func (o *Observer) Observe(el dom.Element) {
	if e, ok := el.(*element); ok && e != nil {
		o.watched[e.node] = true
	}
}

func (o *Observer) Unobserve(el dom.Element) {
	if e, ok := el.(*element); ok && e != nil {
		delete(o.watched, e.node)
	}
}

func (o *Observer) Disconnect() {
	o.watched = make(map[*html.Node]bool)
}
