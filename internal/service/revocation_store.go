package service

import (
	"context"
	"sync"
	"time"
)

// RevocationStore records bearer tokens invalidated before their natural
// expiry. Entries carry the token's remaining lifetime as TTL, so the set
// never outgrows the population of still-valid tokens.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// revocationSweepInterval bounds how often Revoke walks the whole map.
// Tokens revoked on logout are rarely presented again, so the lazy delete
// in IsRevoked alone would let their entries outlive the process.
const revocationSweepInterval = time.Minute

type InMemoryRevocationStore struct {
	mu        sync.RWMutex
	entries   map[string]time.Time
	nextSweep time.Time
}

func NewInMemoryRevocationStore() *InMemoryRevocationStore {
	return &InMemoryRevocationStore{entries: make(map[string]time.Time)}
}

func (s *InMemoryRevocationStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.nextSweep) {
		s.sweepLocked(now)
		s.nextSweep = now.Add(revocationSweepInterval)
	}
	if ttl <= 0 {
		// Already expired; nothing left to revoke.
		return nil
	}
	s.entries[token] = now.Add(ttl)
	return nil
}

func (s *InMemoryRevocationStore) sweepLocked(now time.Time) {
	for token, expiresAt := range s.entries {
		if now.After(expiresAt) {
			delete(s.entries, token)
		}
	}
}

func (s *InMemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	now := time.Now()
	s.mu.RLock()
	expiresAt, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if now.After(expiresAt) {
		s.mu.Lock()
		if exp, ok := s.entries[token]; ok && now.After(exp) {
			delete(s.entries, token)
		}
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
