package mem

import (
	"sync"
	"time"
)

// ChallengeCache memoizes edit-permission checks so repeated challenges for
// the same itinerary within a session do not hit the database every time.
type ChallengeCache interface {
	Set(sessionID, accountID string, allowed bool, ttl time.Duration)

	// Get reports the cached decision for the pair, second result false when
	// missing or expired.
	Get(sessionID, accountID string) (bool, bool)

	// Invalidate drops every cached decision for the itinerary, called when
	// collaborators change.
	Invalidate(sessionID string)
}

type challengeEntry struct {
	allowed   bool
	expiresAt time.Time
}

type Challenges struct {
	mu   sync.RWMutex
	data map[string]map[string]challengeEntry
}

func NewChallenges() *Challenges {
	return &Challenges{
		data: make(map[string]map[string]challengeEntry),
	}
}

func (s *Challenges) Set(sessionID, accountID string, allowed bool, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byAccount, ok := s.data[sessionID]
	if !ok {
		byAccount = make(map[string]challengeEntry)
		s.data[sessionID] = byAccount
	}
	byAccount[accountID] = challengeEntry{
		allowed:   allowed,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Challenges) Get(sessionID, accountID string) (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byAccount, ok := s.data[sessionID]
	if !ok {
		return false, false
	}
	e, ok := byAccount[accountID]
	if !ok || time.Now().After(e.expiresAt) {
		return false, false
	}
	return e.allowed, true
}

func (s *Challenges) Invalidate(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
