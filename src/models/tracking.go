package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event types emitted by the storybook client.
const (
	EventPageLoad   = "pageLoad"
	EventPageReload = "pageReload"
	EventFocus      = "focus"
	EventInput      = "input"
	EventChange     = "change"
	EventClick      = "click"
	EventFormSubmit = "formSubmit"
	EventSelect     = "select"
	EventFileUpload = "fileUpload"

	// EventSession marks a batch of accumulated events for one session.
	EventSession = "sessionEvents"
)

// EventDetails is the per-event payload. Which keys are set depends on the
// event type; Input carries raw user text only for email-like fields.
type EventDetails struct {
	Field   string `json:"field,omitempty" bson:"field,omitempty"`
	Action  string `json:"action,omitempty" bson:"action,omitempty"`
	Input   string `json:"input,omitempty" bson:"input,omitempty"`
	Value   string `json:"value,omitempty" bson:"value,omitempty"` // legacy alias of Input
	Button  string `json:"button,omitempty" bson:"button,omitempty"`
	Focus   string `json:"focus,omitempty" bson:"focus,omitempty"`
	// Section always serializes: 0 is the main form, not an absent value.
	Section int `json:"section" bson:"section"`
	Count   int `json:"count,omitempty" bson:"count,omitempty"`
}

// TrackingEvent is one captured user interaction.
type TrackingEvent struct {
	Type      string       `json:"eventType" bson:"eventType"`
	Timestamp string       `json:"timestamp" bson:"timestamp"` // ISO-8601, set at capture time
	Details   EventDetails `json:"details" bson:"details"`
}

// BatchDetails is the details object of a sessionEvents payload.
type BatchDetails struct {
	Events       []TrackingEvent `json:"events"`
	SessionStart string          `json:"sessionStart"`
	LastUpdate   string          `json:"lastUpdate"`
}

// EventBatch is the wire payload for a batch of session events. It is built
// as an immutable snapshot at send time.
type EventBatch struct {
	SessionID string       `json:"sessionId"`
	EventType string       `json:"eventType"` // always "sessionEvents"
	Details   BatchDetails `json:"details"`
}

// EventPayload is the wire payload for a single miscellaneous event.
type EventPayload struct {
	SessionID string       `json:"sessionId"`
	EventType string       `json:"eventType"`
	Timestamp string       `json:"timestamp,omitempty"`
	Details   EventDetails `json:"details"`
}

// SessionRow is the per-session aggregate. The list-valued columns keep the
// spreadsheet contract: ordered sequences joined with " | ". Exactly one row
// exists per sessionId.
type SessionRow struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID    string             `bson:"sessionId" json:"sessionId"`
	SessionStart string             `bson:"sessionStart" json:"sessionStart"`
	LastUpdate   string             `bson:"lastUpdate" json:"lastUpdate"`
	EventCount   int                `bson:"eventCount" json:"eventCount"`
	Actions      string             `bson:"actions" json:"actions"`
	Inputs       string             `bson:"inputs" json:"inputs"`
	Buttons      string             `bson:"buttons" json:"buttons"`
	Fields       string             `bson:"fields" json:"fields"`
	Focus        string             `bson:"focus" json:"focus"`
	Timeline     string             `bson:"timeline" json:"timeline"`
}

// MiscEvent is a best-effort record of a payload whose eventType is neither
// empty nor "sessionEvents". Losing one is acceptable.
type MiscEvent struct {
	ID        string       `bson:"_id" json:"id"`
	SessionID string       `bson:"sessionId" json:"sessionId"`
	EventType string       `bson:"eventType" json:"eventType"`
	Timestamp string       `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
	Details   EventDetails `bson:"details" json:"details"`
}
