//go:build js && wasm

package browser

import "syscall/js"

// window exposes the browser viewport.
type window struct {
	value js.Value
	funcs *funcRegistry
}

func (w *window) ScrollY() int {
	return int(w.value.Get("scrollY").Float())
}

func (w *window) ViewportWidth() int {
	return w.value.Get("innerWidth").Int()
}

func (w *window) ViewportHeight() int {
	return w.value.Get("innerHeight").Int()
}

func (w *window) ScrollTo(y int, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	w.value.Call("scrollTo", map[string]any{
		"top":      y,
		"behavior": behavior,
	})
}

func (w *window) OnScroll(fn func()) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	w.funcs.keep(f)
	w.value.Call("addEventListener", "scroll", f)
}
