package client

import (
	"encoding/json"
	"testing"

	"Backend-Adventura-001/src/models"

	"github.com/stretchr/testify/assert"
)

type captureSink struct {
	events []models.TrackingEvent
}

func (s *captureSink) Track(eventType string, details models.EventDetails) {
	s.events = append(s.events, models.TrackingEvent{Type: eventType, Details: details})
}

func TestFieldNameResolution(t *testing.T) {
	t.Run("NameWinsOverID", func(t *testing.T) {
		el := &Element{Kind: KindInput, Name: "x", ID: "y"}
		assert.Equal(t, "x", el.FieldName())
	})

	t.Run("PlaceholderWhenNothingElse", func(t *testing.T) {
		el := &Element{Kind: KindInput, Placeholder: "z"}
		assert.Equal(t, "z", el.FieldName())
	})

	t.Run("FallbackLiteral", func(t *testing.T) {
		el := &Element{Kind: KindInput}
		assert.Equal(t, "input", el.FieldName())
	})
}

func TestSectionResolution(t *testing.T) {
	first := &Element{Kind: KindInput, Name: "adventureTitle"}
	second := &Element{Kind: KindTextarea, Name: "imageDescription"}
	outside := &Element{Kind: KindInput, Name: "email"}
	page := &Page{Sections: [][]*Element{{first}, {second}}}

	assert.Equal(t, 1, page.sectionIndex(first))
	assert.Equal(t, 2, page.sectionIndex(second))
	assert.Equal(t, 0, page.sectionIndex(outside), "outside any section resolves to the main form")
}

func TestInputTracking(t *testing.T) {
	t.Run("EmptyInputSuppressed", func(t *testing.T) {
		sink := &captureSink{}
		tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

		tr.Input(&Element{Name: "childName"}, "   ")
		assert.Empty(t, sink.events)
	})

	t.Run("EmailFieldCarriesRawValue", func(t *testing.T) {
		sink := &captureSink{}
		tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

		tr.Input(&Element{Name: "parentEmail"}, "a@gmail.com")
		assert.Len(t, sink.events, 1)
		assert.Equal(t, "a@gmail.com", sink.events[0].Details.Input)
	})

	t.Run("NonEmailFieldCarriesMetadataOnly", func(t *testing.T) {
		sink := &captureSink{}
		tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

		tr.Input(&Element{Name: "childName"}, "Nong Mali")
		assert.Len(t, sink.events, 1)
		assert.Equal(t, "childName", sink.events[0].Details.Field)
		assert.Empty(t, sink.events[0].Details.Input)
	})
}

// A main-form event must say section 0 on the wire, not omit the key.
func TestMainFormSectionSerializes(t *testing.T) {
	sink := &captureSink{}
	tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

	tr.Input(&Element{Name: "childName"}, "Mali")
	assert.Len(t, sink.events, 1)

	raw, err := json.Marshal(sink.events[0])
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"section":0`)
}

func TestHumanDetectedMarker(t *testing.T) {
	store := NewMemoryStorage()
	sink := &captureSink{}
	tr := NewTracker(&Page{}, store, sink)

	assert.False(t, tr.HumanDetected())
	tr.Click("Create Book")
	assert.True(t, tr.HumanDetected())

	// The marker is a side channel; it adds no events of its own.
	assert.Len(t, sink.events, 1)
}

func TestPageLoadedOnce(t *testing.T) {
	t.Run("EmittedOncePerLifetime", func(t *testing.T) {
		sink := &captureSink{}
		tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

		tr.PageLoaded(NavigationNavigate)
		tr.PageLoaded(NavigationNavigate)
		assert.Len(t, sink.events, 1)
		assert.Equal(t, models.EventPageLoad, sink.events[0].Type)
	})

	t.Run("ReloadReported", func(t *testing.T) {
		sink := &captureSink{}
		tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

		tr.PageLoaded(NavigationReload)
		assert.Equal(t, models.EventPageReload, sink.events[0].Type)
	})
}

// The end-to-end scenario: focus an email input, type an address, click the
// create button.
func TestEmailCheckoutScenario(t *testing.T) {
	sink := &captureSink{}
	email := &Element{Kind: KindInput, Name: "email"}
	tr := NewTracker(&Page{}, NewMemoryStorage(), sink)

	tr.Focus(email)
	tr.Input(email, "a@gmail.com")
	tr.Click("Create Book")

	assert.Len(t, sink.events, 3)

	assert.Equal(t, models.EventFocus, sink.events[0].Type)
	assert.Equal(t, "email", sink.events[0].Details.Focus)
	assert.Equal(t, 0, sink.events[0].Details.Section)

	assert.Equal(t, models.EventInput, sink.events[1].Type)
	assert.Equal(t, "email", sink.events[1].Details.Field)
	assert.Equal(t, "a@gmail.com", sink.events[1].Details.Input)

	assert.Equal(t, models.EventClick, sink.events[2].Type)
	assert.Equal(t, "Create Book", sink.events[2].Details.Button)
}
