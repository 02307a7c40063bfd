// Package domtest binds the dom abstraction to HTML parsed with goquery so
// page behaviors can be exercised without a browser. Geometry, scrolling,
// and intersection are scriptable from tests; event dispatch is synchronous
// on the calling goroutine.
package domtest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sitewire/sitewire/internal/dom"
)

// Doc is a parsed page with scriptable geometry and events.
type Doc struct {
	gq  *goquery.Document
	win *Window

	listeners map[*html.Node]map[dom.EventType][]func(dom.Event)
	offsets   map[*html.Node]int
	heights   map[*html.Node]int

	observers   []*Observer
	noObservers bool
}

// Parse builds a Doc from an HTML source string.
func Parse(src string) (*Doc, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("domtest: parse: %w", err)
	}
	d := &Doc{
		gq:        gq,
		listeners: make(map[*html.Node]map[dom.EventType][]func(dom.Event)),
		offsets:   make(map[*html.Node]int),
		heights:   make(map[*html.Node]int),
	}
	d.win = &Window{doc: d, width: 1280, height: 800}
	return d, nil
}

// ByID returns the element with the given id, or nil.
func (d *Doc) ByID(id string) dom.Element {
	return d.First("#" + id)
}

// Find returns all elements matching the CSS selector, in document order.
func (d *Doc) Find(selector string) []dom.Element {
	var out []dom.Element
	d.gq.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &element{doc: d, node: s.Get(0)})
	})
	return out
}

// First returns the first element matching the CSS selector, or nil.
func (d *Doc) First(selector string) dom.Element {
	sel := d.gq.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return &element{doc: d, node: sel.Get(0)}
}

// Window returns the scriptable viewport.
func (d *Doc) Window() dom.Window {
	return d.win
}

// Win returns the viewport with its test-only surface.
func (d *Doc) Win() *Window {
	return d.win
}

// HTML renders the current document state back to markup.
func (d *Doc) HTML() string {
	out, err := d.gq.Html()
	if err != nil {
		return ""
	}
	return out
}

// addListener registers fn for events of type t on node. Listeners are keyed
// by node so handles for the same node share them.
func (d *Doc) addListener(node *html.Node, t dom.EventType, fn func(dom.Event)) {
	byType, ok := d.listeners[node]
	if !ok {
		byType = make(map[dom.EventType][]func(dom.Event))
		d.listeners[node] = byType
	}
	byType[t] = append(byType[t], fn)
}

// EventRecord captures what happened while an event was dispatched.
type EventRecord struct {
	Type             dom.EventType
	DefaultPrevented bool
	Handled          bool
}

// Fire dispatches an event of type t on el, invoking its listeners in
// registration order. A nil element is a no-op.
func (d *Doc) Fire(el dom.Element, t dom.EventType) *EventRecord {
	rec := &EventRecord{Type: t}
	e, ok := el.(*element)
	if !ok || e == nil {
		return rec
	}
	fns := d.listeners[e.node][t]
	if len(fns) == 0 {
		return rec
	}
	rec.Handled = true
	ev := &event{typ: t, target: e, rec: rec}
	for _, fn := range fns {
		fn(ev)
	}
	return rec
}

// Click is shorthand for firing a click event on the first match of
// selector. It returns nil when nothing matches.
func (d *Doc) Click(selector string) *EventRecord {
	el := d.First(selector)
	if el == nil {
		return nil
	}
	return d.Fire(el, dom.Click)
}

// SetOffset assigns the document-pixel offset top reported by the first
// match of selector.
func (d *Doc) SetOffset(selector string, top int) {
	if e, ok := d.First(selector).(*element); ok && e != nil {
		d.offsets[e.node] = top
	}
}

// SetHeight assigns the rendered height reported by the first match of
// selector.
func (d *Doc) SetHeight(selector string, h int) {
	if e, ok := d.First(selector).(*element); ok && e != nil {
		d.heights[e.node] = h
	}
}

// event is a dispatched test event.
type event struct {
	typ    dom.EventType
	target *element
	rec    *EventRecord
}

func (e *event) Type() dom.EventType {
	return e.typ
}

func (e *event) Target() dom.Element {
	return e.target
}

func (e *event) PreventDefault() {
	e.rec.DefaultPrevented = true
}
