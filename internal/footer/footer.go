// Package footer stamps the current calendar year into the footer.
package footer

import (
	"errors"
	"strconv"
	"time"

	"github.com/sitewire/sitewire/internal/dom"
)

// ErrMissingHook is returned when the year element is not on the page.
var ErrMissingHook = errors.New("footer: year element not found")

// Stamp writes the current year into the element with the given id. The
// clock is injectable for tests; pass nil for time.Now. Stamping twice is
// harmless.
func Stamp(doc dom.Document, yearID string, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}
	el := doc.ByID(yearID)
	if el == nil {
		return ErrMissingHook
	}
	el.SetText(strconv.Itoa(now().Year()))
	return nil
}
