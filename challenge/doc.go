/*
Package challenge implements the one-time challenge-code store.

# Lifecycle

Per identity, a challenge moves through:

	Issue → Verify (success, consumed)
	      → Verify wrong code ×3 (discarded)
	      → Verify after TTL (discarded)
	      → Issue again (overwritten)

A challenge is verifiable at most once. The third wrong code discards it and
returns ErrTooManyAttempts; anything after that is ErrNotFound, even with
the correct code.

# Expiry

Expiry is lazy: a stale challenge stays in memory until it is touched again
or until Sweep removes it. Sweep is optional and never changes what a caller
can observe through Verify.
*/
package challenge
