//go:build js && wasm

package browser

import (
	"strings"
	"syscall/js"

	"github.com/sitewire/sitewire/internal/dom"
)

// element wraps a single live DOM node.
type element struct {
	v     js.Value
	funcs *funcRegistry
}

// wrap returns an element handle, or nil for null/undefined values.
func wrap(v js.Value, reg *funcRegistry) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &element{v: v, funcs: reg}
}

func (e *element) ID() string {
	return e.v.Get("id").String()
}

func (e *element) Tag() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *element) SetText(s string) {
	e.v.Set("textContent", s)
}

func (e *element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (e *element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *element) RemoveAttr(name string) {
	e.v.Call("removeAttribute", name)
}

func (e *element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e *element) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e *element) Value() string {
	v := e.v.Get("value")
	if v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (e *element) SetValue(s string) {
	e.v.Set("value", s)
}

func (e *element) SetDisabled(disabled bool) {
	e.v.Set("disabled", disabled)
}

func (e *element) Disabled() bool {
	v := e.v.Get("disabled")
	if v.IsUndefined() {
		return false
	}
	return v.Bool()
}

func (e *element) Parent() dom.Element {
	return wrap(e.v.Get("parentElement"), e.funcs)
}

func (e *element) Find(selector string) []dom.Element {
	return collect(e.v.Call("querySelectorAll", selector), e.funcs)
}

func (e *element) First(selector string) dom.Element {
	return wrap(e.v.Call("querySelector", selector), e.funcs)
}

func (e *element) Contains(other dom.Element) bool {
	o, ok := other.(*element)
	if !ok {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

func (e *element) On(t dom.EventType, fn func(dom.Event)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(&event{typ: t, target: e, v: ev})
		return nil
	})
	e.funcs.keep(f)
	e.v.Call("addEventListener", string(t), f)
}

func (e *element) OffsetTop() int {
	return e.v.Get("offsetTop").Int()
}

func (e *element) OffsetHeight() int {
	return e.v.Get("offsetHeight").Int()
}

// event wraps the js event object delivered to a listener.
type event struct {
	typ    dom.EventType
	target dom.Element
	v      js.Value
}

func (e *event) Type() dom.EventType {
	return e.typ
}

func (e *event) Target() dom.Element {
	return e.target
}

func (e *event) PreventDefault() {
	if !e.v.IsUndefined() && !e.v.IsNull() {
		e.v.Call("preventDefault")
	}
}
