package reveal

import (
	"errors"
	"testing"

	"github.com/sitewire/sitewire/internal/dom/domtest"
)

const page = `<html><body><main>
<section id="features" class="fade-in"></section>
<section id="pricing" class="fade-in"></section>
<section id="contact"></section>
</main></body></html>`

func TestRevealOnIntersection(t *testing.T) {
	doc, err := domtest.Parse(page)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	r, err := Bind(doc, "section.fade-in")
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	defer r.Close()

	if !doc.Watched("#features") || !doc.Watched("#pricing") {
		t.Fatal("fade sections should be observed after Bind")
	}
	if doc.Watched("#contact") {
		t.Error("non-fade section should not be observed")
	}

	// Below the threshold nothing happens.
	doc.Intersect("#features", 0.10)
	if doc.First("#features").HasClass("visible") {
		t.Error("section should not reveal below the threshold")
	}

	doc.Intersect("#features", 0.20)
	if !doc.First("#features").HasClass("visible") {
		t.Error("section should reveal at the threshold")
	}
	if doc.Watched("#features") {
		t.Error("revealed section should be unobserved")
	}

	// One-shot: further intersections change nothing and the class stays.
	doc.Intersect("#features", 0.0)
	if !doc.First("#features").HasClass("visible") {
		t.Error("revealed section must never re-hide")
	}

	// The other section is independent.
	if doc.First("#pricing").HasClass("visible") {
		t.Error("pricing should not be revealed yet")
	}
}

func TestBindNoSections(t *testing.T) {
	doc, err := domtest.Parse(`<html><body><main><section id="a"></section></main></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, err := Bind(doc, "section.fade-in"); !errors.Is(err, ErrNoSections) {
		t.Errorf("Bind() = %v, want ErrNoSections", err)
	}
}

func TestBindUnsupported(t *testing.T) {
	doc, err := domtest.Parse(page)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	doc.DisableObservers()
	if _, err := Bind(doc, "section.fade-in"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Bind() = %v, want ErrUnsupported", err)
	}
}
