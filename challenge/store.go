package challenge

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hferdian/votely/auth"
)

// TTL is how long an issued challenge stays verifiable.
const TTL = 10 * time.Minute

// MaxAttempts is the number of wrong codes tolerated before the challenge
// is discarded.
const MaxAttempts = 3

var (
	ErrNotFound        = errors.New("no challenge found for identity")
	ErrExpired         = errors.New("challenge expired")
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrMismatch        = errors.New("challenge code mismatch")
)

// Challenge is a one-time numeric code bound to an identity.
type Challenge struct {
	Identity    string
	DisplayName string
	Code        string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Attempts    int
}

// Store holds at most one pending challenge per identity. All operations on
// the same identity are serialized; a consumed or discarded challenge can
// never be verified again.
type Store struct {
	mu         sync.Mutex
	challenges map[string]*Challenge

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		challenges: make(map[string]*Challenge),
		now:        time.Now,
	}
}

// Issue creates a fresh challenge for the identity, overwriting any prior
// unconsumed one, and returns a copy. Whether the identity is still allowed
// to vote is the caller's check; the store does not know the voter registry.
func (s *Store) Issue(identity, displayName string) (Challenge, error) {
	code, err := auth.GenerateCode()
	if err != nil {
		return Challenge{}, fmt.Errorf("failed to issue challenge: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ch := &Challenge{
		Identity:    identity,
		DisplayName: displayName,
		Code:        code,
		IssuedAt:    now,
		ExpiresAt:   now.Add(TTL),
		Attempts:    0,
	}
	s.challenges[identity] = ch
	return *ch, nil
}

// Verify consumes the pending challenge for the identity if the code
// matches, returning the display name captured at issue time. Expiry and
// the attempt budget are checked here, lazily; a challenge that fails
// either check is discarded in the same step.
func (s *Store) Verify(identity, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges[identity]
	if !ok {
		return "", ErrNotFound
	}
	if s.now().After(ch.ExpiresAt) {
		delete(s.challenges, identity)
		return "", ErrExpired
	}
	if ch.Code != code {
		ch.Attempts++
		if ch.Attempts >= MaxAttempts {
			delete(s.challenges, identity)
			return "", ErrTooManyAttempts
		}
		return "", ErrMismatch
	}

	delete(s.challenges, identity)
	return ch.DisplayName, nil
}

// Len reports the number of stored challenges, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.challenges)
}

// Pending returns a copy of every stored challenge. Development tooling
// only; never expose the codes to production callers.
func (s *Store) Pending() []Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Challenge, 0, len(s.challenges))
	for _, ch := range s.challenges {
		out = append(out, *ch)
	}
	return out
}

// Sweep removes expired challenges and reports how many were dropped.
// Purely a memory-bound measure: Verify already rejects expired challenges,
// so sweeping never changes observable behavior.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for identity, ch := range s.challenges {
		if now.After(ch.ExpiresAt) {
			delete(s.challenges, identity)
			removed++
		}
	}
	return removed
}

// Clear drops every stored challenge.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges = make(map[string]*Challenge)
}
