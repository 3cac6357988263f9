package client

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// sessionKey is the fixed storage key holding the session identifier.
const sessionKey = "storybookSessionId"

// SessionProvider hands out the per-storage-scope session id. It is an
// explicit instance rather than package state so tests and multi-profile
// embedders can hold isolated sessions.
type SessionProvider struct {
	store Storage
	now   func() time.Time
	// randInt returns a value in [100,999], the millisecond tiebreaker.
	randInt func() int
}

func NewSessionProvider(store Storage) *SessionProvider {
	return &SessionProvider{
		store:   store,
		now:     time.Now,
		randInt: func() int { return 100 + rand.Intn(900) },
	}
}

// SessionID returns the stored identifier verbatim when one exists, with no
// format validation; otherwise it generates, persists and returns a fresh
// one. The id never changes for the life of the storage scope.
func (p *SessionProvider) SessionID() string {
	if v, ok := p.store.Get(sessionKey); ok && v != "" {
		return v
	}

	id := formatSessionID(p.now(), p.randInt())
	p.store.Set(sessionKey, id)
	return id
}

// formatSessionID builds YYYY-MM-DD-HH-mm-ss-mmm-RRR: the millisecond UTC
// timestamp with ":", ".", "T" and "Z" turned into hyphens, the trailing
// hyphen stripped, plus the random suffix.
func formatSessionID(t time.Time, suffix int) string {
	ts := t.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-", "T", "-", "Z", "-").Replace(ts)
	ts = strings.TrimSuffix(ts, "-")
	return fmt.Sprintf("%s-%d", ts, suffix)
}
