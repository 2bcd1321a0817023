package service

import (
	"slices"
	"sync"
)

// userLocker hands out one mutex per username. Entries are reference counted
// and dropped once no goroutine holds or waits for them.
type userLocker struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func newUserLocker() *userLocker {
	return &userLocker{locks: make(map[string]*userLock)}
}

// Lock acquires the mutexes of all given usernames in lexical order and
// returns the function releasing them. Duplicate usernames are locked once.
func (l *userLocker) Lock(usernames ...string) (unlock func()) {
	names := sortedUnique(usernames)

	held := make([]*userLock, 0, len(names))
	for _, name := range names {
		lock := l.acquire(name)
		lock.Lock()
		held = append(held, lock)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
			l.release(names[i])
		}
	}
}

func (l *userLocker) acquire(name string) *userLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[name]
	if !ok {
		lock = &userLock{}
		l.locks[name] = lock
	}
	lock.refs++

	return lock
}

func (l *userLocker) release(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock := l.locks[name]
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, name)
	}
}

func sortedUnique(usernames []string) []string {
	names := make([]string, 0, len(usernames))
	seen := make(map[string]struct{}, len(usernames))
	for _, name := range usernames {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
