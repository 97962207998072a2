/*
Package router defines the HTTP route table using Go 1.22+ routing.

# Routes

Public:

	POST /challenge      request a one-time code
	POST /verify         exchange the code for a credential
	GET  /results        current tally snapshot
	GET  /candidates     candidate slate
	GET  /live           websocket with live tally updates
	GET  /health         health check

Credential required:

	POST /vote           cast the single vote (rate limited)
	GET  /vote/status    has this identity voted

Admin credential required:

	GET  /admin/stats
	POST /admin/reset
	GET  /admin/export

Development mode only (404 otherwise):

	GET    /dev/status
	GET    /dev/challenges
	DELETE /dev/challenges
*/
package router
