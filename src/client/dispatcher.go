package client

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"Backend-Adventura-001/src/models"
)

// Dispatcher posts payloads to the collection endpoint, best effort. No
// method ever returns an error: a failed transmission is logged and the
// event is lost, which is the accepted outcome. Nothing retries.
type Dispatcher struct {
	endpoint string
	session  *SessionProvider
	http     *http.Client
	logf     func(format string, v ...any)
}

func NewDispatcher(endpoint string, session *SessionProvider) *Dispatcher {
	return &Dispatcher{
		endpoint: endpoint,
		session:  session,
		http:     &http.Client{Timeout: 10 * time.Second},
		logf:     log.Printf,
	}
}

// Track sends one event without waiting for the result. The session id is
// read fresh on every call.
func (d *Dispatcher) Track(eventType string, details models.EventDetails) {
	payload := models.EventPayload{
		SessionID: d.session.SessionID(),
		EventType: eventType,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Details:   details,
	}
	go d.post(payload)
}

// SendBatch posts an accumulated sessionEvents snapshot synchronously, still
// swallowing failures.
func (d *Dispatcher) SendBatch(batch *models.EventBatch) {
	d.post(batch)
}

// VisitorPing fires the page-load GET; the response is ignored.
func (d *Dispatcher) VisitorPing() {
	go func() {
		resp, err := d.http.Get(d.endpoint)
		if err != nil {
			d.logf("[client] visitor ping failed: %v", err)
			return
		}
		resp.Body.Close()
	}()
}

func (d *Dispatcher) post(payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		d.logf("[client] payload marshal failed: %v", err)
		return
	}

	// text/plain keeps the request a CORS "simple request", the same trick
	// the browser build uses to avoid preflight.
	resp, err := d.http.Post(d.endpoint, "text/plain;charset=utf-8", bytes.NewReader(raw))
	if err != nil {
		d.logf("[client] tracking send failed: %v", err)
		return
	}
	resp.Body.Close()
}

// Batcher accumulates events and ships them as one sessionEvents payload.
// The flushed batch is an immutable snapshot; events arriving mid-flush land
// in the next one.
type Batcher struct {
	mu           sync.Mutex
	events       []models.TrackingEvent
	sessionStart string

	dispatcher *Dispatcher
	ticker     *time.Ticker
	done       chan struct{}
	closeOnce  sync.Once
}

// NewBatcher starts a batcher that auto-flushes every interval; interval 0
// disables the timer and leaves flushing to the caller.
func NewBatcher(dispatcher *Dispatcher, interval time.Duration) *Batcher {
	b := &Batcher{
		dispatcher:   dispatcher,
		sessionStart: time.Now().Format(time.RFC3339Nano),
		done:         make(chan struct{}),
	}

	if interval > 0 {
		b.ticker = time.NewTicker(interval)
		go func() {
			for {
				select {
				case <-b.ticker.C:
					b.Flush()
				case <-b.done:
					return
				}
			}
		}()
	}
	return b
}

// Track implements EventSink by stamping and queueing the event.
func (b *Batcher) Track(eventType string, details models.EventDetails) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, models.TrackingEvent{
		Type:      eventType,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Details:   details,
	})
}

// Pending reports how many events await the next flush.
func (b *Batcher) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Flush snapshots the queue into one sessionEvents payload and sends it.
func (b *Batcher) Flush() {
	b.mu.Lock()
	events := b.events
	b.events = nil
	b.mu.Unlock()

	if len(events) == 0 {
		return
	}

	b.dispatcher.SendBatch(&models.EventBatch{
		SessionID: b.dispatcher.session.SessionID(),
		EventType: models.EventSession,
		Details: models.BatchDetails{
			Events:       events,
			SessionStart: b.sessionStart,
			LastUpdate:   time.Now().Format(time.RFC3339Nano),
		},
	})
}

// Close stops the timer and flushes whatever is left.
func (b *Batcher) Close() {
	b.closeOnce.Do(func() {
		if b.ticker != nil {
			b.ticker.Stop()
		}
		close(b.done)
		b.Flush()
	})
}
