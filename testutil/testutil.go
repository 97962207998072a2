package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/hferdian/votely/auth"
	"github.com/hferdian/votely/catalog"
	"github.com/hferdian/votely/challenge"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/hub"
	"github.com/hferdian/votely/notify"
	"github.com/hferdian/votely/tally"
)

// TestAdminEmail is the identity granted the admin role in test configs.
const TestAdminEmail = "admin@example.com"

// GetTestConfig returns a standard development-mode test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3011,
		Env:         cliparse.EnvDevelopment,
		TokenSecret: "test-token-secret",
		AdminEmail:  TestAdminEmail,
	}
}

// State bundles the in-memory stores a handler test needs.
type State struct {
	Cfg        cliparse.Config
	Catalog    *catalog.Static
	Challenges *challenge.Store
	Board      *tally.Board
	Hub        *hub.Hub
}

// NewState creates a fresh state bundle with the default candidate slate
func NewState() *State {
	return &State{
		Cfg:        GetTestConfig(),
		Catalog:    catalog.Default(),
		Challenges: challenge.NewStore(),
		Board:      tally.NewBoard(),
		Hub:        hub.New(),
	}
}

// MintTestCredential mints a valid voter credential
func MintTestCredential(t *testing.T, cfg cliparse.Config, identity, displayName string) string {
	t.Helper()

	credential, err := auth.MintCredential(cfg.TokenSecret, identity, displayName, "")
	if err != nil {
		t.Fatalf("Failed to mint test credential: %v", err)
	}
	return credential
}

// MintTestAdminCredential mints a credential carrying the admin role
func MintTestAdminCredential(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	credential, err := auth.MintCredential(cfg.TokenSecret, TestAdminEmail, "Admin", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("Failed to mint test admin credential: %v", err)
	}
	return credential
}

// CastTestVote registers a vote directly on the board
func CastTestVote(t *testing.T, s *State, identity, displayName string, candidateID int) {
	t.Helper()

	cand, ok := s.Catalog.Lookup(candidateID)
	if !ok {
		t.Fatalf("Unknown test candidate %d", candidateID)
	}
	if _, err := s.Board.CastVote(identity, displayName, cand); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// BearerHeader builds the Authorization header map for a credential
func BearerHeader(credential string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + credential}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorCode checks the machine code of an error response
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Code != expected {
		t.Errorf("Expected error code %q, got %q. Body: %s", expected, resp.Code, w.Body.String())
	}
}

// SentCode records one notifier delivery.
type SentCode struct {
	Identity    string
	DisplayName string
	Code        string
}

// RecordingNotifier captures deliveries and can be told to fail.
type RecordingNotifier struct {
	mu   sync.Mutex
	Err  error
	sent []SentCode
}

var _ notify.Notifier = (*RecordingNotifier)(nil)

func (n *RecordingNotifier) SendCode(_ context.Context, identity, displayName, code string) error {
	if n.Err != nil {
		return n.Err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, SentCode{Identity: identity, DisplayName: displayName, Code: code})
	return nil
}

// Sent returns a copy of the recorded deliveries.
func (n *RecordingNotifier) Sent() []SentCode {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]SentCode, len(n.sent))
	copy(out, n.sent)
	return out
}
