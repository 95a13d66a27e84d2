package application

import (
	"sync"
	"time"
)

// sessionCache keeps issued session tokens in memory. Sessions are
// deliberately not persisted: the store's schema is frozen at version 4 and
// the original flow carried no durable session object, only the email
// threaded between screens. A process restart simply requires a fresh login.
type sessionCache struct {
	mu         sync.RWMutex
	now        func() time.Time
	ttl        time.Duration
	maxEntries int
	entries    map[string]sessionEntry
}

type sessionEntry struct {
	identity  Identity
	expiresAt time.Time
}

func newSessionCache(ttl time.Duration, maxEntries int, now func() time.Time) *sessionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	if now == nil {
		now = time.Now
	}
	return &sessionCache{
		now:        now,
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]sessionEntry),
	}
}

// Put registers a token for the identity and returns its expiry.
func (c *sessionCache) Put(token string, identity Identity) time.Time {
	expiry := c.now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked()
	if len(c.entries) >= c.maxEntries {
		c.evictOneLocked()
	}
	c.entries[token] = sessionEntry{identity: identity, expiresAt: expiry}
	return expiry
}

// Resolve returns the identity for a live token.
func (c *sessionCache) Resolve(token string) (Identity, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok {
		return Identity{}, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, token)
		c.mu.Unlock()
		return Identity{}, false
	}
	return entry.identity, true
}

// Revoke drops a token. Revoking an unknown token is a no-op.
func (c *sessionCache) Revoke(token string) {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
}

func (c *sessionCache) cleanupLocked() {
	now := c.now()
	for token, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, token)
		}
	}
}

func (c *sessionCache) evictOneLocked() {
	for token := range c.entries {
		delete(c.entries, token)
		return
	}
}
