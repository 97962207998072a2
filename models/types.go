package models

import "time"

// Machine-readable error codes returned alongside HTTP status codes.
// These are stable: clients switch on them, never on the message text.
const (
	CodeMissingCredential     = "MISSING_CREDENTIAL"
	CodeInvalidCredential     = "INVALID_CREDENTIAL"
	CodeInsufficientPrivilege = "INSUFFICIENT_PRIVILEGE"
	CodeNotFound              = "NOT_FOUND"
	CodeExpired               = "EXPIRED"
	CodeTooManyAttempts       = "TOO_MANY_ATTEMPTS"
	CodeMismatch              = "MISMATCH"
	CodeAlreadyVoted          = "ALREADY_VOTED"
	CodeUnknownCandidate      = "UNKNOWN_CANDIDATE"
	CodeInvalidEmail          = "INVALID_EMAIL"
	CodeInvalidNameLength     = "INVALID_NAME_LENGTH"
	CodeSuspiciousInput       = "SUSPICIOUS_INPUT"
	CodeRateLimited           = "RATE_LIMITED"
)

// Request types

type ChallengeRequest struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"displayName"`
}

type VerifyRequest struct {
	Identity string `json:"identity"`
	Code     string `json:"code"`
}

type VoteRequest struct {
	CandidateID int `json:"candidateId"`
}

// Response types

type ChallengeResponse struct {
	Message string `json:"message"`
	// DebugCode is populated only in development mode, where no notifier
	// delivers the code out of band.
	DebugCode string `json:"debugCode,omitempty"`
}

type Profile struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"displayName"`
}

type VerifyResponse struct {
	Credential string  `json:"credential"`
	Profile    Profile `json:"profile"`
}

type VoteResponse struct {
	Message       string `json:"message"`
	CandidateName string `json:"candidateName"`
	TotalVotes    int    `json:"totalVotes"`
}

type VoteStatusResponse struct {
	HasVoted   bool `json:"hasVoted"`
	TotalVotes int  `json:"totalVotes"`
}

type AdminStatsResponse struct {
	Results           []TallyEntry `json:"results"`
	TotalVotes        int          `json:"totalVotes"`
	ActiveVoters      int          `json:"activeVoters"`
	PendingChallenges int          `json:"pendingChallenges"`
	UptimeSeconds     float64      `json:"uptimeSeconds"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

// TallyEntry is one candidate's row in the public results.
type TallyEntry struct {
	CandidateID int    `json:"candidateId"`
	Candidate   string `json:"candidate"`
	Votes       int    `json:"votes"`
	Color       string `json:"color"`
}

// Snapshot is the full observable tally state, as served by GET /results
// and pushed to live subscribers.
type Snapshot struct {
	Results      []TallyEntry `json:"results"`
	TotalVotes   int          `json:"totalVotes"`
	ActiveVoters int          `json:"activeVoters"`
}

// VoteEvent is the single-vote notification pushed to live subscribers.
type VoteEvent struct {
	CandidateName    string    `json:"candidateName"`
	VoterDisplayName string    `json:"voterDisplayName"`
	Timestamp        time.Time `json:"timestamp"`
	NewTotal         int       `json:"newTotal"`
}

// Export types

type ExportEntry struct {
	CandidateID int    `json:"candidateId"`
	Candidate   string `json:"candidate"`
	Votes       int    `json:"votes"`
	Percentage  string `json:"percentage"`
}

// ExportDocument is the point-in-time snapshot served as a download by
// GET /admin/export.
type ExportDocument struct {
	Timestamp  time.Time     `json:"timestamp"`
	TotalVotes int           `json:"totalVotes"`
	Results    []ExportEntry `json:"results"`
	ExportedBy string        `json:"exportedBy"`
}

// Development-mode types

type DevStatusResponse struct {
	Mode              string  `json:"mode"`
	UptimeSeconds     float64 `json:"uptimeSeconds"`
	TotalVotes        int     `json:"totalVotes"`
	ActiveVoters      int     `json:"activeVoters"`
	PendingChallenges int     `json:"pendingChallenges"`
}

type DevChallengeInfo struct {
	Identity    string    `json:"identity"`
	DisplayName string    `json:"displayName"`
	Code        string    `json:"code"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Attempts    int       `json:"attempts"`
	Expired     bool      `json:"expired"`
}

type DevChallengesResponse struct {
	Total      int                `json:"total"`
	Challenges []DevChallengeInfo `json:"challenges"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
