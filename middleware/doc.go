/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Credential Gates

RequireCredential validates the bearer credential and hands the claims to
the wrapped handler; RequireAdmin additionally demands the admin role:

	mux.HandleFunc("POST /vote",
		middleware.RequireCredential(cfg.TokenSecret, voteHandler.Cast))
	mux.HandleFunc("POST /admin/reset",
		middleware.RequireAdmin(cfg.TokenSecret, adminHandler.Reset))

401 and 403 responses are logged as security events with the caller's IP
and user agent.

# Input Validation

ValidateVoterInput screens challenge-request input: email shape, display
name length 2–100, and script/injection patterns. Failures map to the
INVALID_EMAIL, INVALID_NAME_LENGTH and SUSPICIOUS_INPUT codes.

# Rate Limiting

Per-IP token buckets on top of golang.org/x/time/rate:

	limiter := middleware.NewRateLimiter(rate.Every(20*time.Second), 3)
	mux.HandleFunc("POST /vote", limiter.Limit(handler))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeMismatch, "message")
	middleware.InternalError(w, "notifier failed", err)

# CORS and Client IP

CORS wraps the whole mux; GetClientIP resolves the original client address
through X-Forwarded-For and X-Real-IP.
*/
package middleware
