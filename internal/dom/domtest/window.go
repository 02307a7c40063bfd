package domtest

// ScrollCall records one ScrollTo invocation.
type ScrollCall struct {
	Y      int
	Smooth bool
}

// Window is a scriptable viewport.
type Window struct {
	doc     *Doc
	scrollY int
	width   int
	height  int

	scrollFns []func()
	calls     []ScrollCall
}

func (w *Window) ScrollY() int {
	return w.scrollY
}

func (w *Window) ViewportWidth() int {
	return w.width
}

func (w *Window) ViewportHeight() int {
	return w.height
}

// ScrollTo records the call and moves the viewport there immediately; smooth
// animation is not simulated.
func (w *Window) ScrollTo(y int, smooth bool) {
	w.calls = append(w.calls, ScrollCall{Y: y, Smooth: smooth})
	w.scrollY = y
}

func (w *Window) OnScroll(fn func()) {
	w.scrollFns = append(w.scrollFns, fn)
}

// Resize sets the viewport dimensions.
func (w *Window) Resize(width, height int) {
	w.width = width
	w.height = height
}

// Scroll moves the viewport to y and fires the registered scroll listeners.
func (w *Window) Scroll(y int) {
	w.scrollY = y
	for _, fn := range w.scrollFns {
		fn()
	}
}

// LastScroll returns the most recent ScrollTo call, if any.
func (w *Window) LastScroll() (ScrollCall, bool) {
	if len(w.calls) == 0 {
		return ScrollCall{}, false
	}
	return w.calls[len(w.calls)-1], true
}

// ScrollCalls returns every recorded ScrollTo call.
func (w *Window) ScrollCalls() []ScrollCall {
	return w.calls
}
