//go:build js && wasm

// Package browser binds the dom abstraction to the live page through
// syscall/js. It only compiles for js/wasm targets; everything here assumes
// the single-threaded browser event loop.
package browser

import (
	"context"
	"syscall/js"

	"github.com/sitewire/sitewire/internal/dom"
)

// Document is the live browser document.
type Document struct {
	doc    js.Value
	win    *window
	funcs  *funcRegistry
	closed bool
}

// Open resolves the live document, waiting for DOMContentLoaded when the
// page is still loading. The context bounds the wait.
func Open(ctx context.Context) (*Document, error) {
	global := js.Global()
	doc := global.Get("document")
	reg := &funcRegistry{}

	if doc.Get("readyState").String() == "loading" {
		ready := make(chan struct{})
		var once js.Func
		once = js.FuncOf(func(this js.Value, args []js.Value) any {
			close(ready)
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", once, map[string]any{"once": true})
		select {
		case <-ready:
			once.Release()
		case <-ctx.Done():
			once.Release()
			return nil, ctx.Err()
		}
	}

	d := &Document{doc: doc, funcs: reg}
	d.win = &window{value: global, funcs: reg}
	return d, nil
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) dom.Element {
	return wrap(d.doc.Call("getElementById", id), d.funcs)
}

// Find returns all elements matching the CSS selector, in document order.
func (d *Document) Find(selector string) []dom.Element {
	return collect(d.doc.Call("querySelectorAll", selector), d.funcs)
}

// First returns the first element matching the CSS selector, or nil.
func (d *Document) First(selector string) dom.Element {
	return wrap(d.doc.Call("querySelector", selector), d.funcs)
}

// Window returns the browser viewport.
func (d *Document) Window() dom.Window {
	return d.win
}

// Close releases every js callback registered through this document. The
// page stops reacting to events afterwards.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.funcs.releaseAll()
}

// funcRegistry keeps js.Func handles alive for the document lifetime so the
// Go closures behind listeners are not collected while the page still
// references them.
type funcRegistry struct {
	funcs []js.Func
}

func (r *funcRegistry) keep(f js.Func) {
	r.funcs = append(r.funcs, f)
}

func (r *funcRegistry) releaseAll() {
	for _, f := range r.funcs {
		f.Release()
	}
	r.funcs = nil
}

// collect converts a NodeList value into element handles.
func collect(list js.Value, reg *funcRegistry) []dom.Element {
	if list.IsNull() || list.IsUndefined() {
		return nil
	}
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		if el := wrap(list.Index(i), reg); el != nil {
			out = append(out, el)
		}
	}
	return out
}
