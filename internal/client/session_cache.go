package client

import (
	"sync"

	"github.com/MKhiriev/go-note-keeper/models"
)

// DefaultSessionCacheSize is how many logged-out users can be kept.
const DefaultSessionCacheSize = 10

type cachedSession struct {
	username string
	token    models.Token
}

// SessionCache keeps the tokens of users who chose to stay cached on logout.
// A cached user can log in again without a password for the lifetime of the
// process. Once the cache is full the oldest entry is evicted.
type SessionCache struct {
	mu       sync.Mutex
	sessions []cachedSession
	limit    int
}

func NewSessionCache(limit int) *SessionCache {
	if limit <= 0 {
		limit = DefaultSessionCacheSize
	}

	return &SessionCache{limit: limit}
}

// Lookup returns the cached token of username.
func (c *SessionCache) Lookup(username string) (models.Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(username); i >= 0 {
		return c.sessions[i].token, true
	}

	return models.Token{}, false
}

// Keep caches token for username. A user already in the cache keeps its
// position and gets the new token.
func (c *SessionCache) Keep(username string, token models.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(username); i >= 0 {
		c.sessions[i].token = token
		return
	}

	c.sessions = append(c.sessions, cachedSession{username: username, token: token})
	if len(c.sessions) > c.limit {
		c.sessions = c.sessions[len(c.sessions)-c.limit:]
	}
}

// Forget removes username from the cache.
func (c *SessionCache) Forget(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(username); i >= 0 {
		c.sessions = append(c.sessions[:i:i], c.sessions[i+1:]...)
	}
}

// Usernames lists cached users from oldest to newest.
func (c *SessionCache) Usernames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.sessions))
	for _, s := range c.sessions {
		names = append(names, s.username)
	}

	return names
}

func (c *SessionCache) index(username string) int {
	for i, s := range c.sessions {
		if s.username == username {
			return i
		}
	}

	return -1
}
