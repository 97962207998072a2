package challenge

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	s := NewStore()

	ch, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", ch.Identity)
	assert.Len(t, ch.Code, 6)
	assert.Equal(t, ch.IssuedAt.Add(TTL), ch.ExpiresAt)
	assert.Equal(t, 1, s.Len())

	displayName, err := s.Verify("alice@example.com", ch.Code)
	require.NoError(t, err)
	assert.Equal(t, "Alice", displayName)
	assert.Equal(t, 0, s.Len())
}

func TestVerifyIsSingleUse(t *testing.T) {
	s := NewStore()
	ch, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = s.Verify("alice@example.com", ch.Code)
	require.NoError(t, err)

	// Same code again: the challenge was consumed.
	_, err = s.Verify("alice@example.com", ch.Code)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyUnknownIdentity(t *testing.T) {
	s := NewStore()
	_, err := s.Verify("nobody@example.com", "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyMismatchCountsAttempts(t *testing.T) {
	s := NewStore()
	ch, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	wrong := "000000"
	if ch.Code == wrong {
		wrong = "000001"
	}

	_, err = s.Verify("alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrMismatch)
	_, err = s.Verify("alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrMismatch)

	// The correct code still works after two misses.
	displayName, err := s.Verify("alice@example.com", ch.Code)
	require.NoError(t, err)
	assert.Equal(t, "Alice", displayName)
}

func TestAttemptLockout(t *testing.T) {
	s := NewStore()
	ch, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	wrong := "000000"
	if ch.Code == wrong {
		wrong = "000001"
	}

	_, err = s.Verify("alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrMismatch)
	_, err = s.Verify("alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrMismatch)

	// Third wrong code exhausts the budget and discards the challenge.
	_, err = s.Verify("alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// Fourth attempt, even with the correct code, finds nothing.
	_, err = s.Verify("alice@example.com", ch.Code)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiry(t *testing.T) {
	s := NewStore()
	ch, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	// 601 seconds after issue, one past the 600-second TTL.
	s.now = func() time.Time { return ch.IssuedAt.Add(TTL + time.Second) }

	_, err = s.Verify("alice@example.com", ch.Code)
	assert.ErrorIs(t, err, ErrExpired)

	// The expired challenge was discarded on touch.
	_, err = s.Verify("alice@example.com", ch.Code)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReissueOverwrites(t *testing.T) {
	s := NewStore()
	first, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)
	second, err := s.Issue("alice@example.com", "Alicia")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	if first.Code != second.Code {
		_, err = s.Verify("alice@example.com", first.Code)
		assert.ErrorIs(t, err, ErrMismatch)
	}

	displayName, err := s.Verify("alice@example.com", second.Code)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", displayName)
}

func TestSweep(t *testing.T) {
	s := NewStore()
	start := time.Now()
	s.now = func() time.Time { return start }

	_, err := s.Issue("old@example.com", "Old")
	require.NoError(t, err)

	s.now = func() time.Time { return start.Add(TTL / 2) }
	_, err = s.Issue("fresh@example.com", "Fresh")
	require.NoError(t, err)

	// Past the first challenge's deadline, before the second's.
	s.now = func() time.Time { return start.Add(TTL + time.Second) }
	removed := s.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())

	_, err = s.Verify("old@example.com", "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClear(t *testing.T) {
	s := NewStore()
	_, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)
	_, err = s.Issue("bob@example.com", "Bob")
	require.NoError(t, err)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestPendingCopies(t *testing.T) {
	s := NewStore()
	_, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	pending := s.Pending()
	require.Len(t, pending, 1)
	pending[0].Code = "mutated"

	// Mutating the copy must not affect the stored challenge.
	fresh := s.Pending()
	assert.NotEqual(t, "mutated", fresh[0].Code)
}

func TestConcurrentVerifySameIdentity(t *testing.T) {
	s := NewStore()
	ch, err := s.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	successes := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Verify("alice@example.com", ch.Code); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent verify may succeed")
}
