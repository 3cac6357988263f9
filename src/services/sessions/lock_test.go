package sessions

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalSessionLock(t *testing.T) {
	t.Run("PrunedAfterRelease", func(t *testing.T) {
		unlock, err := lockSession("2025-03-14-09-26-53-589-123")
		assert.NoError(t, err)

		localLocksMu.Lock()
		held := len(localLocks)
		localLocksMu.Unlock()
		assert.Equal(t, 1, held)

		unlock()

		localLocksMu.Lock()
		remaining := len(localLocks)
		localLocksMu.Unlock()
		assert.Zero(t, remaining, "released lock entries must be removed")
	})

	t.Run("SerializesSameSession", func(t *testing.T) {
		const workers = 20
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := lockSession("2025-03-14-09-26-53-589-456")
				if !assert.NoError(t, err) {
					return
				}
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, workers, counter)

		localLocksMu.Lock()
		remaining := len(localLocks)
		localLocksMu.Unlock()
		assert.Zero(t, remaining)
	})
}
