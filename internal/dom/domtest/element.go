package domtest

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sitewire/sitewire/internal/dom"
)

// element wraps one parsed node. All state lives on the node or in the Doc
// side tables, so handles are interchangeable.
type element struct {
	doc  *Doc
	node *html.Node
}

// sel wraps the node in a single-node goquery selection for querying and
// mutation.
func (e *element) sel() *goquery.Selection {
	return e.doc.gq.FindNodes(e.node)
}

func (e *element) ID() string {
	id, _ := e.sel().Attr("id")
	return id
}

func (e *element) Tag() string {
	return e.node.Data
}

func (e *element) Text() string {
	return e.sel().Text()
}

func (e *element) SetText(s string) {
	e.sel().SetText(s)
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel().Attr(name)
}

func (e *element) SetAttr(name, value string) {
	e.sel().SetAttr(name, value)
}

func (e *element) RemoveAttr(name string) {
	e.sel().RemoveAttr(name)
}

func (e *element) HasClass(name string) bool {
	return e.sel().HasClass(name)
}

func (e *element) AddClass(name string) {
	e.sel().AddClass(name)
}

func (e *element) RemoveClass(name string) {
	e.sel().RemoveClass(name)
}

func (e *element) Value() string {
	if e.Tag() == "textarea" {
		return e.Text()
	}
	v, _ := e.sel().Attr("value")
	return v
}

func (e *element) SetValue(s string) {
	if e.Tag() == "textarea" {
		e.SetText(s)
		return
	}
	e.sel().SetAttr("value", s)
}

func (e *element) SetDisabled(disabled bool) {
	if disabled {
		e.sel().SetAttr("disabled", "disabled")
		return
	}
	e.sel().RemoveAttr("disabled")
}

func (e *element) Disabled() bool {
	_, ok := e.sel().Attr("disabled")
	return ok
}

func (e *element) Parent() dom.Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &element{doc: e.doc, node: p}
		}
	}
	return nil
}

func (e *element) Find(selector string) []dom.Element {
	var out []dom.Element
	e.sel().Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &element{doc: e.doc, node: s.Get(0)})
	})
	return out
}

func (e *element) First(selector string) dom.Element {
	found := e.sel().Find(selector)
	if found.Length() == 0 {
		return nil
	}
	return &element{doc: e.doc, node: found.Get(0)}
}

func (e *element) Contains(other dom.Element) bool {
	o, ok := other.(*element)
	if !ok || o == nil {
		return false
	}
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

func (e *element) On(t dom.EventType, fn func(dom.Event)) {
	e.doc.addListener(e.node, t, fn)
}

func (e *element) OffsetTop() int {
	return e.doc.offsets[e.node]
}

func (e *element) OffsetHeight() int {
	return e.doc.heights[e.node]
}
