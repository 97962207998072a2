package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hferdian/votely/auth"
	"github.com/hferdian/votely/challenge"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/middleware"
	"github.com/hferdian/votely/models"
	"github.com/hferdian/votely/notify"
	"github.com/hferdian/votely/tally"
)

type AuthHandler struct {
	challenges *challenge.Store
	board      *tally.Board
	notifier   notify.Notifier
	cfg        cliparse.Config
}

func NewAuthHandler(challenges *challenge.Store, board *tally.Board, notifier notify.Notifier, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{challenges: challenges, board: board, notifier: notifier, cfg: cfg}
}

// RequestChallenge handles POST /challenge
func (h *AuthHandler) RequestChallenge(w http.ResponseWriter, r *http.Request) {
	var req models.ChallengeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "", "Invalid JSON")
		return
	}

	if req.Identity == "" || req.DisplayName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "", "identity and displayName are required")
		return
	}

	if err := middleware.ValidateVoterInput(req.Identity, req.DisplayName); err != nil {
		switch {
		case errors.Is(err, middleware.ErrInvalidEmail):
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidEmail, err.Error())
		case errors.Is(err, middleware.ErrInvalidNameLength):
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidNameLength, err.Error())
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeSuspiciousInput, err.Error())
		}
		return
	}

	// An identity that already voted gets no new challenge.
	if h.board.HasVoted(req.Identity) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeAlreadyVoted, "You have already voted")
		return
	}

	ch, err := h.challenges.Issue(req.Identity, req.DisplayName)
	if err != nil {
		middleware.InternalError(w, "failed to issue challenge", err, "identity", req.Identity)
		return
	}

	slog.Info("challenge issued", "identity", req.Identity)

	// In development the code is returned inline instead of delivered.
	if h.cfg.IsDevelopment() {
		middleware.JSONResponse(w, http.StatusOK, models.ChallengeResponse{
			Message:   "Challenge code generated (development mode)",
			DebugCode: ch.Code,
		})
		return
	}

	if err := h.notifier.SendCode(r.Context(), ch.Identity, ch.DisplayName, ch.Code); err != nil {
		middleware.InternalError(w, "failed to deliver challenge code", err, "identity", req.Identity)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChallengeResponse{
		Message: "Challenge code sent to your email",
	})
}

// VerifyChallenge handles POST /verify
func (h *AuthHandler) VerifyChallenge(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "", "Invalid JSON")
		return
	}

	if req.Identity == "" || req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "", "identity and code are required")
		return
	}

	displayName, err := h.challenges.Verify(req.Identity, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, challenge.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeNotFound, "No challenge found for this identity")
		case errors.Is(err, challenge.ErrExpired):
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeExpired, "Challenge code has expired")
		case errors.Is(err, challenge.ErrTooManyAttempts):
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeTooManyAttempts, "Too many failed attempts")
		case errors.Is(err, challenge.ErrMismatch):
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeMismatch, "Invalid challenge code")
		default:
			middleware.InternalError(w, "challenge verification failed", err, "identity", req.Identity)
		}
		return
	}

	role := ""
	if h.cfg.AdminEmail != "" && req.Identity == h.cfg.AdminEmail {
		role = auth.RoleAdmin
	}

	credential, err := auth.MintCredential(h.cfg.TokenSecret, req.Identity, displayName, role)
	if err != nil {
		middleware.InternalError(w, "failed to mint credential", err, "identity", req.Identity)
		return
	}

	slog.Info("challenge verified", "identity", req.Identity, "admin", role == auth.RoleAdmin)

	middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{
		Credential: credential,
		Profile: models.Profile{
			Identity:    req.Identity,
			DisplayName: displayName,
		},
	})
}
