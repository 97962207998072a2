/*
Package tally holds the voter registry and per-candidate counts.

# The Vote Transaction

CastVote is the only mutation path during normal operation. Under one lock
it checks membership, registers the voter, and increments the candidate
bucket, together or not at all. Concurrent casts for the same identity
yield exactly one success and one ErrAlreadyVoted, in either arrival order.

CastVote also assembles the vote event and the post-commit snapshot while
still holding the lock. Callers publish those payloads afterwards, so a
slow subscriber never extends the critical section.

# Reset

Reset clears registry and tally in one step and returns the empty snapshot
for the caller to broadcast. Between casts and resets the invariant

	sum(bucket counts) == number of registered voters

holds at every observable instant.
*/
package tally
