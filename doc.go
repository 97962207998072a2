/*
Package main provides the entry point for the Votely API server.

Votely is an in-memory, single-process live voting service: verified
participants cast exactly one vote each for a fixed candidate slate, and
every connected observer sees the tally update in real time.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	TOKEN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3011 -e development --token-secret "..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - TOKEN_SECRET (--token-secret): Secret for credential signing

Optional settings:

  - PORT (-p): Server port (default: 3011)
  - APP_ENV (-e): development or production (default: development)
  - ADMIN_EMAIL (--admin-email): Identity granted the admin role
  - ALLOWED_ORIGIN (--origin): CORS origin
  - EMAIL_HOST/PORT/USER/PASS/FROM: SMTP delivery (required in production)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - challenge: one-time code store with TTL and attempt budget
  - auth: signed credential mint/validate, code generation
  - tally: voter registry + per-candidate counts, the atomic vote transaction
  - hub: publish/subscribe fan-out to live observers
  - catalog: candidate reference data
  - notify: challenge-code delivery (SMTP or log)
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, credential gates, validation, rate limiting
  - models: request/response types and error codes
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
