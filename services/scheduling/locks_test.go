package scheduling_test

import (
	"sync"
	"testing"

	"schedly/services/scheduling"

	"github.com/stretchr/testify/require"
)

func TestUserLocksSerializePerUser(t *testing.T) {
	locks := scheduling.NewUserLocks()

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-1")
			defer unlock()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxInCritical)
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := scheduling.NewUserLocks()

	unlockA := locks.Lock("user-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("user-b")
		unlockB()
		close(done)
	}()
	<-done
}
