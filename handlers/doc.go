/*
Package handlers contains HTTP request handlers for the Votely API.

# Handler Types

Each handler is a struct with its store and config dependencies injected:

  - AuthHandler: challenge issue and verification (/challenge, /verify)
  - VoteHandler: vote casting, results, candidates, voter status
  - AdminHandler: stats, reset, export (admin credential required)
  - LiveHandler: websocket fan-out of tally updates (/live)
  - DevHandler: development-only introspection endpoints

# Flow

A voter requests a challenge, verifies it, receives a signed credential,
and casts exactly one vote:

	POST /challenge {identity, displayName}
	POST /verify    {identity, code}       → {credential, profile}
	POST /vote      Bearer credential, {candidateId}

The cast handler publishes the fresh snapshot and a vote event through the
hub only after the tally transaction commits.

# Error Mapping

Domain sentinel errors map to HTTP status plus a machine code from package
models; anything unexpected logs server-side and returns a generic 500.
*/
package handlers
