package service

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/tr4cking/admin-api/internal/infrastructure/restclient"
)

// SessionStore keeps each clerk's backend session alive between requests.
// Entries expire after the configured TTL of inactivity; an expired session
// forces the clerk back through login.
type SessionStore struct {
	cache *gocache.Cache
}

// NewSessionStore creates a session store with the given idle TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: gocache.New(ttl, ttl/2),
	}
}

// Put stores a session under a fresh id.
func (s *SessionStore) Put(id uuid.UUID, session *restclient.Session) {
	s.cache.Set(id.String(), session, gocache.DefaultExpiration)
}

// Get returns the session for id and slides its expiration window.
func (s *SessionStore) Get(id uuid.UUID) (*restclient.Session, bool) {
	value, found := s.cache.Get(id.String())
	if !found {
		return nil, false
	}
	session, ok := value.(*restclient.Session)
	if !ok {
		return nil, false
	}
	s.cache.Set(id.String(), session, gocache.DefaultExpiration)
	return session, true
}

// Delete drops a session, ending the clerk's console login.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.cache.Delete(id.String())
}
