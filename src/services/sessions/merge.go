package sessions

import (
	"fmt"
	"strings"
	"time"

	"Backend-Adventura-001/src/models"
)

// columnSep joins the list-valued columns of a session row.
const columnSep = " | "

// SplitColumn parses a delimiter-joined column back into its ordered
// sequence. An empty column is an empty sequence.
func SplitColumn(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, columnSep)
}

// JoinColumn is the inverse of SplitColumn.
func JoinColumn(vals []string) string {
	return strings.Join(vals, columnSep)
}

// timelineEntry formats "<local-time>:<action>" for the human-readable
// Timeline column.
func timelineEntry(timestamp, action string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		t = time.Now()
	}
	return t.Local().Format("15:04:05") + ":" + action
}

// rawInput returns the user-entered text of an event, accepting both the
// current "input" key and the legacy "value" alias.
func rawInput(d models.EventDetails) string {
	if d.Input != "" {
		return d.Input
	}
	return d.Value
}

// ApplyBatch merges a batch of events into a session row in place. Each
// event contributes independently to every column whose key it carries, so
// one event may extend several sequences. Contributions are strict appends:
// no reordering, no dedup. EventCount tracks the Actions sequence only.
func ApplyBatch(row *models.SessionRow, batch *models.EventBatch) {
	actions := SplitColumn(row.Actions)
	inputs := SplitColumn(row.Inputs)
	buttons := SplitColumn(row.Buttons)
	fields := SplitColumn(row.Fields)
	focus := SplitColumn(row.Focus)
	timeline := SplitColumn(row.Timeline)

	for _, ev := range batch.Details.Events {
		d := ev.Details
		if d.Action != "" {
			actions = append(actions, d.Action)
			timeline = append(timeline, timelineEntry(ev.Timestamp, d.Action))
		}
		if in := rawInput(d); strings.TrimSpace(in) != "" {
			inputs = append(inputs, fmt.Sprintf("%s:%q", d.Field, in))
		}
		if d.Button != "" {
			buttons = append(buttons, d.Button)
		}
		if d.Field != "" {
			fields = append(fields, d.Field)
		}
		if d.Focus != "" {
			focus = append(focus, d.Focus)
		}
	}

	row.Actions = JoinColumn(actions)
	row.Inputs = JoinColumn(inputs)
	row.Buttons = JoinColumn(buttons)
	row.Fields = JoinColumn(fields)
	row.Focus = JoinColumn(focus)
	row.Timeline = JoinColumn(timeline)
	row.EventCount = len(actions)

	if row.SessionStart == "" {
		row.SessionStart = batch.Details.SessionStart
	}
	if batch.Details.LastUpdate != "" {
		row.LastUpdate = batch.Details.LastUpdate
	} else {
		row.LastUpdate = time.Now().Format(time.RFC3339)
	}
}
