package client

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var sessionIDPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}-\d{3}-\d{3}$`)

func TestSessionIDFormat(t *testing.T) {
	t.Run("GeneratedIDMatchesPattern", func(t *testing.T) {
		p := NewSessionProvider(NewMemoryStorage())
		id := p.SessionID()
		assert.Regexp(t, sessionIDPattern, id)
	})

	t.Run("KnownTimestampProducesExactID", func(t *testing.T) {
		p := &SessionProvider{
			store:   NewMemoryStorage(),
			now:     func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC) },
			randInt: func() int { return 123 },
		}
		assert.Equal(t, "2025-03-14-09-26-53-589-123", p.SessionID())
	})

	t.Run("RandomSuffixStaysInRange", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			p := NewSessionProvider(NewMemoryStorage())
			id := p.SessionID()
			suffix := id[len(id)-3:]
			assert.GreaterOrEqual(t, suffix, "100")
			assert.LessOrEqual(t, suffix, "999")
		}
	})
}

func TestSessionIDIdempotence(t *testing.T) {
	t.Run("SecondCallReturnsSameID", func(t *testing.T) {
		p := NewSessionProvider(NewMemoryStorage())
		assert.Equal(t, p.SessionID(), p.SessionID())
	})

	t.Run("SharedStorageScopeSharesID", func(t *testing.T) {
		store := NewMemoryStorage()
		first := NewSessionProvider(store).SessionID()
		second := NewSessionProvider(store).SessionID()
		assert.Equal(t, first, second)
	})

	t.Run("StoredValueReturnedVerbatimWithoutValidation", func(t *testing.T) {
		store := NewMemoryStorage()
		store.Set(sessionKey, "not-a-real-session-id")
		p := NewSessionProvider(store)
		assert.Equal(t, "not-a-real-session-id", p.SessionID())
	})
}
