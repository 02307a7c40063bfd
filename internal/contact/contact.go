// Package contact implements the contact form validator and submitter.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sitewire/sitewire/internal/dom"
)

// ErrMissingHooks is returned when the form or its message container is not
// on the page.
var ErrMissingHooks = errors.New("contact: form or message container not found")

// Banner messages. Server-supplied messages take precedence over the
// defaults where a response carries one.
const (
	DefaultSuccessMessage  = "Thanks! Your message has been sent."
	DefaultFailureMessage  = "Something went wrong. Please try again."
	ConnectionErrorMessage = "Could not connect to the server. Please try again later."

	validationMessage = "Please correct the errors above."
	sendingMessage    = "Sending your message..."
	sendingLabel      = "Sending..."
)

const invalidClass = "invalid"

// Options configures a Form beyond its page hooks.
type Options struct {
	// Endpoint receives the serialized form as a JSON POST.
	Endpoint string
	// Timeout bounds one submission request.
	Timeout time.Duration
	// ClearAfter auto-clears the success banner after this duration.
	// Zero leaves the banner until the next submission.
	ClearAfter time.Duration
	// Client is the HTTP client used for submissions; nil means
	// http.DefaultClient.
	Client *http.Client
	// Run executes the submission task. The default runs it on a new
	// goroutine; tests inject an inline runner for deterministic order.
	Run func(func())
}

// Form validates and submits the contact form. One submission runs at a
// time: an in-flight flag drops submit events while a request is pending,
// and is released only after that request's UI updates are complete.
type Form struct {
	form    dom.Element
	message dom.Element
	submit  dom.Element
	opts    Options

	submitLabel string

	mu         sync.Mutex
	inFlight   bool
	clearTimer *time.Timer
}

// serverResponse is the JSON body the endpoint replies with.
type serverResponse struct {
	Message string `json:"message"`
}

// Bind wires validation and submission against the page. Required and email
// fields are validated on focus-loss; the whole form is validated on submit.
func Bind(doc dom.Document, formID, messageID string, opts Options) (*Form, error) {
	form := doc.ByID(formID)
	message := doc.ByID(messageID)
	if form == nil || message == nil {
		return nil, ErrMissingHooks
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Run == nil {
		opts.Run = func(fn func()) { go fn() }
	}

	f := &Form{
		form:    form,
		message: message,
		submit:  form.First(`button[type="submit"], input[type="submit"]`),
		opts:    opts,
	}
	if f.submit != nil {
		f.submitLabel = controlLabel(f.submit)
	}

	for _, field := range f.validatedFields() {
		field := field
		field.On(dom.Blur, func(dom.Event) {
			f.validateField(field)
		})
	}

	form.On(dom.Submit, func(ev dom.Event) {
		ev.PreventDefault()
		f.handleSubmit()
	})

	return f, nil
}

// Close releases the banner auto-clear timer if one is pending.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearTimer != nil {
		f.clearTimer.Stop()
		f.clearTimer = nil
	}
}

// fields returns every named form control, in document order.
func (f *Form) fields() []dom.Element {
	return f.form.Find("input[name], textarea[name], select[name]")
}

// validatedFields returns the controls subject to validation: those marked
// required plus email-typed ones.
func (f *Form) validatedFields() []dom.Element {
	var out []dom.Element
	for _, field := range f.fields() {
		_, required := field.Attr("required")
		if required || fieldType(field) == "email" {
			out = append(out, field)
		}
	}
	return out
}

// validateField checks one field and updates its error display. It reports
// whether the field is valid.
func (f *Form) validateField(field dom.Element) bool {
	if msg := validationError(field); msg != "" {
		f.showFieldError(field, msg)
		return false
	}
	f.clearFieldError(field)
	return true
}

// validateAll checks every required/email field, updating each field's error
// display, and reports whether the form as a whole is valid.
func (f *Form) validateAll() bool {
	ok := true
	for _, field := range f.validatedFields() {
		if !f.validateField(field) {
			ok = false
		}
	}
	return ok
}

// handleSubmit runs the submit contract for one submit event.
func (f *Form) handleSubmit() {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	if !f.validateAll() {
		f.showBanner(validationMessage, true)
		return
	}

	f.mu.Lock()
	f.inFlight = true
	if f.clearTimer != nil {
		f.clearTimer.Stop()
		f.clearTimer = nil
	}
	f.mu.Unlock()

	if f.submit != nil {
		f.submit.SetDisabled(true)
		setControlLabel(f.submit, sendingLabel)
	}
	f.showBanner(sendingMessage, false)

	payload := f.serialize()
	f.opts.Run(func() {
		f.send(payload)
	})
}

// serialize maps every named form control to its current string value.
func (f *Form) serialize() map[string]string {
	payload := make(map[string]string)
	for _, field := range f.fields() {
		name, _ := field.Attr("name")
		payload[name] = field.Value()
	}
	return payload
}

// send posts the payload and applies the outcome to the UI. It runs on the
// form's task runner and releases the in-flight guard last, so one
// submission's UI updates always complete before the next submit event is
// processed.
func (f *Form) send(payload map[string]string) {
	defer func() {
		if f.submit != nil {
			f.submit.SetDisabled(false)
			setControlLabel(f.submit, f.submitLabel)
		}
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		f.showBanner(ConnectionErrorMessage, true)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		f.showBanner(ConnectionErrorMessage, true)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.opts.Client.Do(req)
	if err != nil {
		f.showBanner(ConnectionErrorMessage, true)
		return
	}
	defer resp.Body.Close()

	// A malformed or absent body falls back to the default messages.
	var sr serverResponse
	_ = json.NewDecoder(resp.Body).Decode(&sr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := sr.Message
		if msg == "" {
			msg = DefaultFailureMessage
		}
		f.showBanner(msg, true)
		return
	}

	msg := sr.Message
	if msg == "" {
		msg = DefaultSuccessMessage
	}
	f.showBanner(msg, false)
	f.reset()
	f.scheduleClear()
}

// reset clears every field and its error display.
func (f *Form) reset() {
	for _, field := range f.fields() {
		field.SetValue("")
		f.clearFieldError(field)
	}
}

// scheduleClear arms the success banner auto-clear, when configured.
func (f *Form) scheduleClear() {
	if f.opts.ClearAfter <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearTimer = time.AfterFunc(f.opts.ClearAfter, func() {
		f.clearBanner()
		f.mu.Lock()
		f.clearTimer = nil
		f.mu.Unlock()
	})
}

// showBanner sets the aggregate message. Alerts are failures; everything
// else announces as status.
func (f *Form) showBanner(text string, alert bool) {
	f.message.SetText(text)
	f.message.AddClass("visible")
	if alert {
		f.message.SetAttr("role", "alert")
		f.message.AddClass("error")
		f.message.RemoveClass("success")
		return
	}
	f.message.SetAttr("role", "status")
	f.message.AddClass("success")
	f.message.RemoveClass("error")
}

// clearBanner empties the aggregate message.
func (f *Form) clearBanner() {
	f.message.SetText("")
	f.message.RemoveClass("visible")
	f.message.RemoveClass("error")
	f.message.RemoveClass("success")
}

// showFieldError fills the field's adjacent error node and marks the field.
func (f *Form) showFieldError(field dom.Element, msg string) {
	field.AddClass(invalidClass)
	if el := errorNode(field); el != nil {
		el.SetText(msg)
	}
}

// clearFieldError resets the field's error display.
func (f *Form) clearFieldError(field dom.Element) {
	field.RemoveClass(invalidClass)
	if el := errorNode(field); el != nil {
		el.SetText("")
	}
}

// errorNode finds the .error-message element sharing the field's parent.
func errorNode(field dom.Element) dom.Element {
	parent := field.Parent()
	if parent == nil {
		return nil
	}
	return parent.First(".error-message")
}

// fieldType returns the control's type attribute, or "" when unset.
func fieldType(field dom.Element) string {
	t, _ := field.Attr("type")
	return t
}

// controlLabel reads the visible label of a submit control. Button labels
// are text content; input labels are the value attribute.
func controlLabel(el dom.Element) string {
	if el.Tag() == "input" {
		return el.Value()
	}
	return el.Text()
}

func setControlLabel(el dom.Element, label string) {
	if el.Tag() == "input" {
		el.SetValue(label)
		return
	}
	el.SetText(label)
}
