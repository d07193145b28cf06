package scheduling

import "sync"

// UserLocks serializes schedule mutations per user. The conflict check and
// the following write are separate store round-trips; holding the owner's
// lock across both keeps two concurrent creates with overlapping ranges from
// both passing the check.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewUserLocks returns an empty lock table.
func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for userID, creating it on first use, and returns
// the matching unlock func.
func (l *UserLocks) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
