package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hferdian/votely/auth"
	"github.com/hferdian/votely/catalog"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/hub"
	"github.com/hferdian/votely/middleware"
	"github.com/hferdian/votely/models"
	"github.com/hferdian/votely/tally"
)

type VoteHandler struct {
	board   *tally.Board
	catalog catalog.Catalog
	hub     *hub.Hub
	cfg     cliparse.Config
}

func NewVoteHandler(board *tally.Board, cat catalog.Catalog, h *hub.Hub, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{board: board, catalog: cat, hub: h, cfg: cfg}
}

// Cast handles POST /vote (bearer credential required)
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "", "Invalid JSON")
		return
	}

	cand, ok := h.catalog.Lookup(req.CandidateID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeUnknownCandidate, "Invalid candidate")
		return
	}

	result, err := h.board.CastVote(claims.Identity, claims.DisplayName, cand)
	if err != nil {
		if errors.Is(err, tally.ErrAlreadyVoted) {
			middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeAlreadyVoted, "You have already voted")
			return
		}
		middleware.InternalError(w, "vote cast failed", err, "identity", claims.Identity)
		return
	}

	// Publish after the transaction committed and the lock is gone.
	h.hub.PublishSnapshot(result.Snapshot)
	h.hub.PublishEvent(result.Event)

	slog.Info("vote cast", "identity", claims.Identity, "candidate", cand.Name, "total", result.Event.NewTotal)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message:       "Vote cast successfully",
		CandidateName: cand.Name,
		TotalVotes:    result.Event.NewTotal,
	})
}

// Status handles GET /vote/status (bearer credential required)
func (h *VoteHandler) Status(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	snapshot := h.board.Snapshot()
	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{
		HasVoted:   h.board.HasVoted(claims.Identity),
		TotalVotes: snapshot.TotalVotes,
	})
}

// Results handles GET /results (public)
func (h *VoteHandler) Results(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.board.Snapshot())
}

// Candidates handles GET /candidates (public)
func (h *VoteHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.All())
}
