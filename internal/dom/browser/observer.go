//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/sitewire/sitewire/internal/dom"
)

// NewObserver builds an IntersectionObserver delivering each watched element
// to fn once its visible share reaches threshold. ok is false when the
// browser does not expose IntersectionObserver.
func (d *Document) NewObserver(threshold float64, fn func(dom.Element)) (dom.Observer, bool) {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.IsUndefined() || ctor.IsNull() {
		return nil, false
	}

	o := &observer{}
	o.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		entries := args[0]
		n := entries.Length()
		for i := 0; i < n; i++ {
			entry := entries.Index(i)
			if !entry.Get("isIntersecting").Bool() {
				continue
			}
			if el := wrap(entry.Get("target"), d.funcs); el != nil {
				fn(el)
			}
		}
		return nil
	})
	d.funcs.keep(o.cb)
	o.v = ctor.New(o.cb, map[string]any{"threshold": threshold})
	return o, true
}

// observer wraps a live IntersectionObserver.
type observer struct {
	v  js.Value
	cb js.Func
}

func (o *observer) Observe(el dom.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("unobserve", e.v)
	}
}

func (o *observer) Disconnect() {
	o.v.Call("disconnect")
}
