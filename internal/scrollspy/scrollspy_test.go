package scrollspy

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sitewire/sitewire/internal/dom/domtest"
)

const page = `<html><body>
<header class="site-header">
  <nav>
    <a href="#home" class="nav-link">Home</a>
    <a href="#features" class="nav-link">Features</a>
    <a href="#contact" class="nav-link">Contact</a>
  </nav>
</header>
<nav id="mobile-menu">
  <a href="#features" class="nav-link">Features</a>
</nav>
<main>
  <section id="home"></section>
  <section id="features"></section>
  <section id="contact"></section>
</main>
</body></html>`

func options() Options {
	return Options{
		NavLinkSelector:    "a.nav-link",
		SectionSelector:    "main section[id]",
		HeaderSelector:     "header.site-header",
		DesktopOffsetPx:    80,
		MobileOffsetPx:     64,
		MobileBreakpointPx: 768,
		Debounce:           5 * time.Millisecond,
		HomeID:             "home",
	}
}

func bindPage(t *testing.T, opts Options) (*domtest.Doc, *Spy) {
	t.Helper()
	doc, err := domtest.Parse(page)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	doc.SetOffset("#home", 0)
	doc.SetOffset("#features", 600)
	doc.SetOffset("#contact", 1400)
	doc.SetHeight("header.site-header", 72)

	s, err := Bind(doc, opts)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	t.Cleanup(s.Close)
	return doc, s
}

// hasActive reads the doc under the spy's evaluation lock so checks are
// ordered after any timer-goroutine evaluation.
func hasActive(doc *domtest.Doc, s *Spy, selector string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return doc.First(selector).HasClass("active")
}

func TestBindMissingHooks(t *testing.T) {
	doc, err := domtest.Parse(`<html><body></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, err := Bind(doc, options()); !errors.Is(err, ErrMissingHooks) {
		t.Errorf("Bind() = %v, want ErrMissingHooks", err)
	}
}

func TestInitialStateMarksHome(t *testing.T) {
	doc, s := bindPage(t, options())
	if !hasActive(doc, s, `header a[href="#home"]`) {
		t.Error("home link should be active at scroll position 0")
	}
	if hasActive(doc, s, `header a[href="#features"]`) {
		t.Error("features link should be inactive at scroll position 0")
	}
}

func TestEvaluateTracksScrollPosition(t *testing.T) {
	doc, s := bindPage(t, options())
	win := doc.Win()

	// Past the adjusted top of #features (600 - 72 = 528).
	win.ScrollTo(700, false)
	s.evaluate()
	if !hasActive(doc, s, `header a[href="#features"]`) {
		t.Error("features should be active at y=700")
	}
	if hasActive(doc, s, `header a[href="#home"]`) {
		t.Error("home should be inactive at y=700")
	}
	// The mobile link for the same section activates too.
	if !hasActive(doc, s, `#mobile-menu a[href="#features"]`) {
		t.Error("mobile features link should be active as well")
	}

	// Past #contact.
	win.ScrollTo(1500, false)
	s.evaluate()
	if !hasActive(doc, s, `header a[href="#contact"]`) {
		t.Error("contact should be active at y=1500")
	}
	if hasActive(doc, s, `header a[href="#features"]`) {
		t.Error("features should deactivate once contact is reached")
	}

	// Scrolling back above features deactivates it again.
	win.ScrollTo(100, false)
	s.evaluate()
	if hasActive(doc, s, `header a[href="#features"]`) {
		t.Error("features should deactivate after scrolling back up")
	}
	if !hasActive(doc, s, `header a[href="#home"]`) {
		t.Error("home should be active again near the top")
	}
}

func TestScrollListenerDebounces(t *testing.T) {
	doc, s := bindPage(t, options())
	win := doc.Win()

	// A burst of scroll events coalesces into one evaluation after the
	// quiet period.
	for i := 0; i < 5; i++ {
		win.Scroll(700 + i)
	}
	deadline := time.Now().Add(time.Second)
	for !hasActive(doc, s, `header a[href="#features"]`) {
		if time.Now().After(deadline) {
			t.Fatal("debounced evaluation never ran")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestClickSmoothScrollsWithHeaderOffset(t *testing.T) {
	doc, _ := bindPage(t, options())

	rec := doc.Click(`header a[href="#features"]`)
	if !rec.DefaultPrevented {
		t.Error("anchor click default should be prevented")
	}
	call, ok := doc.Win().LastScroll()
	if !ok {
		t.Fatal("click should scroll the viewport")
	}
	// Measured header height (72) wins over the configured desktop offset.
	if call.Y != 600-72 {
		t.Errorf("scroll target = %d, want %d", call.Y, 600-72)
	}
	if !call.Smooth {
		t.Error("anchor scrolling should be smooth")
	}
}

func TestClickHomeScrollsToTop(t *testing.T) {
	doc, _ := bindPage(t, options())

	doc.Click(`header a[href="#home"]`)
	call, ok := doc.Win().LastScroll()
	if !ok {
		t.Fatal("click should scroll the viewport")
	}
	if call.Y != 0 {
		t.Errorf("home scroll target = %d, want 0", call.Y)
	}
}

func TestClickUsesMobileOffsetBelowBreakpoint(t *testing.T) {
	doc, _ := bindPage(t, options())
	doc.Win().Resize(390, 844)

	doc.Click(`header a[href="#features"]`)
	call, ok := doc.Win().LastScroll()
	if !ok {
		t.Fatal("click should scroll the viewport")
	}
	if call.Y != 600-64 {
		t.Errorf("scroll target = %d, want %d", call.Y, 600-64)
	}
}

func TestClickInMenuClosesIt(t *testing.T) {
	doc, err := domtest.Parse(page)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	doc.SetOffset("#features", 600)

	closed := 0
	opts := options()
	opts.MenuPanel = doc.ByID("mobile-menu")
	opts.CloseMenu = func() { closed++ }

	s, err := Bind(doc, opts)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	defer s.Close()

	doc.Click(`#mobile-menu a[href="#features"]`)
	if closed != 1 {
		t.Errorf("menu close calls = %d, want 1", closed)
	}

	// Desktop links leave the menu alone.
	doc.Click(`header a[href="#features"]`)
	if closed != 1 {
		t.Errorf("menu close calls after desktop click = %d, want 1", closed)
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	runs := 0
	for i := 0; i < 5; i++ {
		d.Trigger(func() {
			mu.Lock()
			runs++
			mu.Unlock()
		})
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (burst should coalesce)", runs)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)

	var mu sync.Mutex
	runs := 0
	d.Trigger(func() {
		mu.Lock()
		runs++
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if runs != 0 {
		t.Errorf("runs = %d, want 0 after Stop", runs)
	}
}
