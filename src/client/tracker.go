package client

import (
	"regexp"
	"strings"
	"sync"

	"Backend-Adventura-001/src/models"
)

// EventSink receives normalized events from the tracker. The Batcher and the
// Dispatcher both satisfy it.
type EventSink interface {
	Track(eventType string, details models.EventDetails)
}

// ElementKind is the closed set of form controls the tracker understands,
// in place of DOM selector matching.
type ElementKind int

const (
	KindInput ElementKind = iota
	KindTextarea
	KindSelect
	KindButton
	KindFile
)

// Element is one tracked form control.
type Element struct {
	Kind        ElementKind
	Name        string
	ID          string
	Placeholder string
}

// FieldName resolves the logical field name: name, then id, then
// placeholder, then the literal fallback.
func (e *Element) FieldName() string {
	switch {
	case e.Name != "":
		return e.Name
	case e.ID != "":
		return e.ID
	case e.Placeholder != "":
		return e.Placeholder
	default:
		return "input"
	}
}

// Page models the form layout for section resolution: the adventure
// sections in document order, each holding its elements.
type Page struct {
	Sections [][]*Element
}

// sectionIndex is the 1-based ordinal of the adventure section containing
// el; elements outside every section belong to the main form, index 0.
func (p *Page) sectionIndex(el *Element) int {
	if p == nil {
		return 0
	}
	for i, section := range p.Sections {
		for _, candidate := range section {
			if candidate == el {
				return i + 1
			}
		}
	}
	return 0
}

// NavigationType mirrors the browser's navigation-timing entry type.
type NavigationType int

const (
	NavigationNavigate NavigationType = iota
	NavigationReload
)

// emailField decides whether a field may carry raw user text. Everything
// else is captured as metadata only.
var emailField = regexp.MustCompile(`(?i)email`)

// humanKey is the persisted bot-filter marker. It only records a boolean;
// tracking behaviour never depends on it.
const humanKey = "humanDetected"

// Tracker normalizes interactions into TrackingEvents and hands them to its
// sink.
type Tracker struct {
	page     *Page
	store    Storage
	sink     EventSink
	loadOnce sync.Once
}

func NewTracker(page *Page, store Storage, sink EventSink) *Tracker {
	return &Tracker{page: page, store: store, sink: sink}
}

func (t *Tracker) markHuman() {
	t.store.Set(humanKey, "true")
}

// HumanDetected reports whether any meaningful interaction was seen in this
// storage scope.
func (t *Tracker) HumanDetected() bool {
	v, _ := t.store.Get(humanKey)
	return v == "true"
}

// PageLoaded emits pageLoad or pageReload, once per tracker lifetime.
func (t *Tracker) PageLoaded(nav NavigationType) {
	t.loadOnce.Do(func() {
		eventType := models.EventPageLoad
		if nav == NavigationReload {
			eventType = models.EventPageReload
		}
		t.sink.Track(eventType, models.EventDetails{Action: eventType})
	})
}

// Focus records a field receiving focus.
func (t *Tracker) Focus(el *Element) {
	t.markHuman()
	t.sink.Track(models.EventFocus, models.EventDetails{
		Focus:   el.FieldName(),
		Section: t.page.sectionIndex(el),
	})
}

// Input records typing into a field. Empty or whitespace-only values are
// suppressed; the raw text is attached only for email-like fields.
func (t *Tracker) Input(el *Element, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	t.markHuman()

	details := models.EventDetails{
		Field:   el.FieldName(),
		Section: t.page.sectionIndex(el),
	}
	if emailField.MatchString(details.Field) {
		details.Input = value
	}
	t.sink.Track(models.EventInput, details)
}

// Change records a committed value change, under the same value-capture
// restriction as Input.
func (t *Tracker) Change(el *Element, value string) {
	t.markHuman()

	details := models.EventDetails{
		Field:   el.FieldName(),
		Section: t.page.sectionIndex(el),
	}
	if emailField.MatchString(details.Field) {
		details.Input = value
	}
	t.sink.Track(models.EventChange, details)
}

// Click records a button press by its label.
func (t *Tracker) Click(button string) {
	t.markHuman()
	t.sink.Track(models.EventClick, models.EventDetails{Button: button})
}

// Select records a dropdown choice. Options are a fixed list, not free
// text, so the chosen value is safe to capture.
func (t *Tracker) Select(el *Element, option string) {
	t.markHuman()
	t.sink.Track(models.EventSelect, models.EventDetails{
		Field:   el.FieldName(),
		Section: t.page.sectionIndex(el),
		Input:   option,
	})
}

// FileUpload records how many files were attached, never their contents.
func (t *Tracker) FileUpload(el *Element, count int) {
	t.markHuman()
	t.sink.Track(models.EventFileUpload, models.EventDetails{
		Field:   el.FieldName(),
		Section: t.page.sectionIndex(el),
		Count:   count,
	})
}

// FormSubmit records the final submit with the number of adventure sections
// completed.
func (t *Tracker) FormSubmit(adventureCount int) {
	t.markHuman()
	t.sink.Track(models.EventFormSubmit, models.EventDetails{
		Action: models.EventFormSubmit,
		Count:  adventureCount,
	})
}
