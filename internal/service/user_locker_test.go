package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{"alice12", "bobby12"}, sortedUnique([]string{"bobby12", "alice12"}))
	assert.Equal(t, []string{"alice12"}, sortedUnique([]string{"alice12", "alice12"}))
	assert.Empty(t, sortedUnique(nil))
}

func TestUserLocker_SameUserLockedOnce(t *testing.T) {
	l := newUserLocker()

	unlock := l.Lock("alice12", "alice12")
	unlock()

	assert.Empty(t, l.locks)
}

func TestUserLocker_EntriesAreDropped(t *testing.T) {
	l := newUserLocker()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Lock("alice12", "bobby12")()
		}()
		go func() {
			defer wg.Done()
			l.Lock("bobby12", "alice12")()
		}()
	}
	wg.Wait()

	assert.Empty(t, l.locks)
}

func TestUserLocker_Serializes(t *testing.T) {
	l := newUserLocker()
	counter := 0

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("alice12")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}
