package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/hferdian/votely/auth"
	"github.com/hferdian/votely/models"
)

// AuthedHandler is a handler that additionally receives the validated
// credential claims.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, claims auth.Claims)

// RequireCredential extracts and validates the bearer credential before
// calling next. Missing credential → 401, invalid or expired → 403.
func RequireCredential(secret string, next AuthedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		credential, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || credential == "" {
			logSecurityEvent(r, http.StatusUnauthorized)
			ErrorResponse(w, http.StatusUnauthorized, models.CodeMissingCredential, "Access credential required")
			return
		}

		claims, err := auth.ValidateCredential(secret, credential)
		if err != nil {
			logSecurityEvent(r, http.StatusForbidden)
			ErrorResponse(w, http.StatusForbidden, models.CodeInvalidCredential, "Invalid or expired credential")
			return
		}

		next(w, r, claims)
	}
}

// RequireAdmin is RequireCredential plus a role check.
func RequireAdmin(secret string, next AuthedHandler) http.HandlerFunc {
	return RequireCredential(secret, func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
		if claims.Role != auth.RoleAdmin {
			logSecurityEvent(r, http.StatusForbidden)
			ErrorResponse(w, http.StatusForbidden, models.CodeInsufficientPrivilege, "Admin access required")
			return
		}
		next(w, r, claims)
	})
}

func logSecurityEvent(r *http.Request, statusCode int) {
	slog.Warn("security event",
		"status", statusCode,
		"method", r.Method,
		"path", r.URL.Path,
		"ip", GetClientIP(r),
		"userAgent", r.UserAgent(),
	)
}

// Input validation for the challenge flow.

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidNameLength = errors.New("name must be between 2 and 100 characters")
	ErrSuspiciousInput   = errors.New("invalid characters detected")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Patterns that have no business in an email address or a display name.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`),
}

// ValidateVoterInput screens the identity and display name from a challenge
// request. Returns one of the sentinel validation errors, or nil.
func ValidateVoterInput(identity, displayName string) error {
	if !emailPattern.MatchString(identity) {
		return ErrInvalidEmail
	}
	if len(displayName) < 2 || len(displayName) > 100 {
		return ErrInvalidNameLength
	}
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(identity) || pattern.MatchString(displayName) {
			return ErrSuspiciousInput
		}
	}
	return nil
}
