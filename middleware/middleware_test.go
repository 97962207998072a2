package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/hferdian/votely/auth"
	"github.com/hferdian/votely/models"
)

const testSecret = "middleware-test-secret"

func TestValidateVoterInput(t *testing.T) {
	tests := []struct {
		name        string
		identity    string
		displayName string
		wantErr     error
	}{
		{"valid", "alice@example.com", "Alice", nil},
		{"valid long domain", "a@mail.example.co.id", "Alice Wijaya", nil},
		{"missing at", "aliceexample.com", "Alice", ErrInvalidEmail},
		{"missing tld", "alice@example", "Alice", ErrInvalidEmail},
		{"whitespace in local", "al ice@example.com", "Alice", ErrInvalidEmail},
		{"empty identity", "", "Alice", ErrInvalidEmail},
		{"name too short", "alice@example.com", "A", ErrInvalidNameLength},
		{"name too long", "alice@example.com", string(make([]byte, 101)), ErrInvalidNameLength},
		{"script tag in name", "alice@example.com", "<script>alert(1)</script>", ErrSuspiciousInput},
		{"script tag uppercase", "alice@example.com", "<SCRIPT>x</SCRIPT>", ErrSuspiciousInput},
		{"javascript url", "alice@example.com", "javascript:alert(1)", ErrSuspiciousInput},
		{"event handler", "alice@example.com", "x onload=alert(1)", ErrSuspiciousInput},
		{"iframe", "alice@example.com", "<iframe src=x></iframe>", ErrSuspiciousInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoterInput(tt.identity, tt.displayName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateVoterInput() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, models.CodeMismatch, "Invalid challenge code")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != models.CodeMismatch {
		t.Errorf("code = %q, want %q", resp.Code, models.CodeMismatch)
	}
	if resp.Error != "Invalid challenge code" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	InternalError(w, "notifier failed", errors.New("smtp: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Internal server error" {
		t.Errorf("error = %q, internals must not leak", resp.Error)
	}
}

func TestRequireCredential(t *testing.T) {
	handler := RequireCredential(testSecret, func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
		JSONResponse(w, http.StatusOK, map[string]string{"identity": claims.Identity})
	})

	t.Run("missing credential", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/vote", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		assertCode(t, w, models.CodeMissingCredential)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/vote", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("invalid credential", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/vote", nil)
		req.Header.Set("Authorization", "Bearer not-a-credential")
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		assertCode(t, w, models.CodeInvalidCredential)
	})

	t.Run("valid credential", func(t *testing.T) {
		credential, err := auth.MintCredential(testSecret, "alice@example.com", "Alice", "")
		if err != nil {
			t.Fatalf("mint: %v", err)
		}
		req := httptest.NewRequest("POST", "/vote", nil)
		req.Header.Set("Authorization", "Bearer "+credential)
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200. Body: %s", w.Code, w.Body.String())
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(testSecret, func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("voter credential rejected", func(t *testing.T) {
		credential, _ := auth.MintCredential(testSecret, "alice@example.com", "Alice", "")
		req := httptest.NewRequest("GET", "/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+credential)
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		assertCode(t, w, models.CodeInsufficientPrivilege)
	})

	t.Run("admin credential accepted", func(t *testing.T) {
		credential, _ := auth.MintCredential(testSecret, "admin@example.com", "Admin", auth.RoleAdmin)
		req := httptest.NewRequest("GET", "/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+credential)
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	// 1 token per hour, burst 3: calls four and five must be rejected.
	rl := NewRateLimiter(rate.Every(time.Hour), 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Allow() call %d rejected within burst", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Allow() call 4 accepted beyond burst")
	}

	// A different caller has its own budget.
	if !rl.Allow("10.0.0.2") {
		t.Error("Allow() rejected an unrelated caller")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/vote", nil)
	req.RemoteAddr = "10.1.2.3:5555"

	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
	assertCode(t, w, models.CodeRateLimited)
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS("http://localhost:3010", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called on preflight")
	}))

	req := httptest.NewRequest("OPTIONS", "/vote", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3010" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "192.168.1.5:1234", nil, "192.168.1.5"},
		{"x-forwarded-for single", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"x-forwarded-for chain", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func assertCode(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != expected {
		t.Errorf("code = %q, want %q", resp.Code, expected)
	}
}
