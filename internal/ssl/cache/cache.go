// Package cache implements a server-side session cache for TLS
// resumption. Entries expire after a configurable timeout and the
// cache holds at most a configured number of sessions, recycling the
// oldest entry when full.
package cache

import (
	"container/list"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout is the lifetime of a cached session.
	DefaultTimeout = 24 * time.Hour

	// DefaultMaxEntries bounds the number of cached sessions.
	DefaultMaxEntries = 50

	// MaxSessionIDLength is the largest session id accepted, per the
	// TLS session id field size.
	MaxSessionIDLength = 32

	// MasterLen is the size of a TLS master secret.
	MasterLen = 48
)

var ErrInvalidSessionID = errors.New("cache: invalid session id")

// Session carries the resumable state of a TLS session. Peer
// certificates are deliberately not part of it; the cache stores only
// what resumption needs.
type Session struct {
	ID          []byte
	Ciphersuite uint16
	Compression uint8
	Master      [MasterLen]byte
}

// clone deep-copies s so cached state never aliases caller memory.
func (s *Session) clone() Session {
	out := *s
	out.ID = append([]byte(nil), s.ID...)
	return out
}

type entry struct {
	session Session
	stored  time.Time
}

// Cache is a thread-safe session store. Entries are kept in insertion
// order; a lookup table keyed by session id avoids scanning on Get.
type Cache struct {
	mu         sync.Mutex
	timeout    time.Duration
	maxEntries int
	index      map[string]*list.Element
	order      *list.List

	log zerolog.Logger
	now func() time.Time
}

// New returns an empty cache with the default timeout and capacity.
func New() *Cache {
	return &Cache{
		timeout:    DefaultTimeout,
		maxEntries: DefaultMaxEntries,
		index:      make(map[string]*list.Element),
		order:      list.New(),
		log:        zerolog.Nop(),
		now:        time.Now,
	}
}

// SetTimeout updates the session lifetime. A zero timeout disables
// expiry.
func (c *Cache) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

// SetMaxEntries updates the capacity. Zero or negative disables the
// bound. Lowering the limit below the current length evicts nothing;
// a later Set of a new id recycles the single oldest entry, so the
// length stays above the new limit.
func (c *Cache) SetMaxEntries(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	c.maxEntries = n
}

// SetLogger routes the cache's debug logging.
func (c *Cache) SetLogger(log zerolog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = log
}

// Len reports the number of cached entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) expired(e *entry, now time.Time) bool {
	return c.timeout != 0 && now.Sub(e.stored) > c.timeout
}

// Get looks up a session by id. Expired entries are treated as
// missing but left in place for Set to refresh.
func (c *Cache) Get(id []byte) (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[string(id)]
	if !ok {
		return Session{}, false
	}

	e := elem.Value.(*entry)
	if c.expired(e, c.now()) {
		c.log.Debug().Str("id", hex.EncodeToString(id)).Msg("session entry expired")
		return Session{}, false
	}

	return e.session.clone(), true
}

// Set stores a session under its own id. An existing live entry is
// updated in place; an expired one is refreshed and moved to the back
// of the eviction order. When the cache is full the oldest entry is
// recycled.
func (c *Cache) Set(s *Session) error {
	if len(s.ID) == 0 || len(s.ID) > MaxSessionIDLength {
		return ErrInvalidSessionID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	key := string(s.ID)

	if elem, ok := c.index[key]; ok {
		e := elem.Value.(*entry)
		if c.expired(e, now) {
			c.order.MoveToBack(elem)
			c.log.Debug().Str("id", hex.EncodeToString(s.ID)).Msg("refreshing expired entry")
		}
		e.session = s.clone()
		e.stored = now
		return nil
	}

	if c.maxEntries > 0 && c.order.Len() >= c.maxEntries {
		oldest := c.order.Front()
		e := oldest.Value.(*entry)
		delete(c.index, string(e.session.ID))
		c.log.Debug().
			Str("evicted", hex.EncodeToString(e.session.ID)).
			Str("id", hex.EncodeToString(s.ID)).
			Msg("cache full, recycling oldest entry")

		e.session = s.clone()
		e.stored = now
		c.order.MoveToBack(oldest)
		c.index[key] = oldest
		return nil
	}

	c.index[key] = c.order.PushBack(&entry{session: s.clone(), stored: now})
	return nil
}
