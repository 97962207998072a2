/*
Package models defines the JSON request/response types and shared domain
types for the Votely API.

# Error Codes

Every caller-facing failure carries a stable machine-readable code next to
the human message:

	{"error": "You have already voted", "code": "ALREADY_VOTED"}

The code constants (CodeAlreadyVoted, CodeInvalidCredential, ...) are the
contract; messages may be reworded freely.

# Snapshots and Events

Snapshot is the full tally state observers see, both on GET /results and on
the live channel. VoteEvent is the per-vote notification. Both are built
under the tally lock and published after it is released, so they are always
internally consistent.
*/
package models
