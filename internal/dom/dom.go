// Package dom abstracts the subset of the browser document surface that the
// page behaviors need. The browser sub-package binds it to the live DOM via
// syscall/js; the domtest sub-package binds it to parsed HTML so behaviors
// are testable on any platform.
package dom

// EventType identifies a category of UI event a listener can subscribe to.
type EventType string

const (
	Click  EventType = "click"
	Submit EventType = "submit"
	Blur   EventType = "blur"
	Scroll EventType = "scroll"
)

// Event is a single UI event delivered to a registered listener.
type Event interface {
	// Type returns the event category.
	Type() EventType
	// Target returns the element the event was dispatched on.
	Target() Element
	// PreventDefault suppresses the platform's default reaction
	// (navigation for anchor clicks, page reload for form submits).
	PreventDefault()
}

// Element is one node of the page. Lookups that miss return nil; callers are
// expected to check. Two handles for the same underlying node are
// interchangeable: listeners, classes, and attributes apply to the node, not
// the handle.
type Element interface {
	// ID returns the element's id attribute, or "" when unset.
	ID() string
	// Tag returns the lower-case tag name.
	Tag() string

	// Text returns the element's text content.
	Text() string
	// SetText replaces the element's text content.
	SetText(s string)

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)
	// SetAttr sets the named attribute.
	SetAttr(name, value string)
	// RemoveAttr removes the named attribute if present.
	RemoveAttr(name string)

	// HasClass reports whether the class list contains name.
	HasClass(name string) bool
	// AddClass adds name to the class list; adding twice is a no-op.
	AddClass(name string)
	// RemoveClass removes name from the class list if present.
	RemoveClass(name string)

	// Value returns the current value of a form control. For non-controls
	// it returns "".
	Value() string
	// SetValue replaces the current value of a form control.
	SetValue(s string)
	// SetDisabled toggles the disabled state of a form control.
	SetDisabled(disabled bool)
	// Disabled reports whether a form control is disabled.
	Disabled() bool

	// Parent returns the parent element, or nil at the document root.
	Parent() Element
	// Find returns all descendants matching the CSS selector, in document
	// order.
	Find(selector string) []Element
	// First returns the first descendant matching the CSS selector, or nil.
	First(selector string) Element
	// Contains reports whether other is this element or a descendant of it.
	Contains(other Element) bool

	// On registers fn for events of type t targeting this element.
	On(t EventType, fn func(Event))

	// OffsetTop returns the element's vertical position in document pixels.
	OffsetTop() int
	// OffsetHeight returns the element's rendered height in pixels.
	OffsetHeight() int
}

// Observer watches elements for viewport intersection. Implementations
// deliver each element to the construction callback when its visible area
// first meets the configured threshold.
type Observer interface {
	// Observe adds el to the watched set.
	Observe(el Element)
	// Unobserve removes el from the watched set.
	Unobserve(el Element)
	// Disconnect stops watching everything.
	Disconnect()
}

// Document is the page a behavior binds to.
type Document interface {
	// ByID returns the element with the given id, or nil.
	ByID(id string) Element
	// Find returns all elements matching the CSS selector, in document
	// order.
	Find(selector string) []Element
	// First returns the first element matching the CSS selector, or nil.
	First(selector string) Element
	// Window returns the viewport this document is rendered in.
	Window() Window
	// NewObserver builds an intersection observer firing fn for each
	// watched element whose visible share first reaches threshold
	// (0..1). ok is false when the platform cannot observe
	// intersections; callers must treat that as "feature unavailable".
	NewObserver(threshold float64, fn func(Element)) (obs Observer, ok bool)
}

// Window exposes viewport geometry, scrolling, and document-level events.
type Window interface {
	// ScrollY returns the current vertical scroll offset in pixels.
	ScrollY() int
	// ViewportWidth returns the viewport width in pixels.
	ViewportWidth() int
	// ViewportHeight returns the viewport height in pixels.
	ViewportHeight() int
	// ScrollTo scrolls the viewport so y is at the top. When smooth is
	// true the platform animates the transition.
	ScrollTo(y int, smooth bool)
	// OnScroll registers fn for scroll events on the viewport.
	OnScroll(fn func())
}
