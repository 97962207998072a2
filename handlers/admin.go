package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hferdian/votely/auth"
	"github.com/hferdian/votely/challenge"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/hub"
	"github.com/hferdian/votely/middleware"
	"github.com/hferdian/votely/models"
	"github.com/hferdian/votely/tally"
)

type AdminHandler struct {
	board      *tally.Board
	challenges *challenge.Store
	hub        *hub.Hub
	cfg        cliparse.Config
	startedAt  time.Time
}

func NewAdminHandler(board *tally.Board, challenges *challenge.Store, h *hub.Hub, cfg cliparse.Config, startedAt time.Time) *AdminHandler {
	return &AdminHandler{board: board, challenges: challenges, hub: h, cfg: cfg, startedAt: startedAt}
}

// Stats handles GET /admin/stats (admin credential required)
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	snapshot := h.board.Snapshot()
	middleware.JSONResponse(w, http.StatusOK, models.AdminStatsResponse{
		Results:           snapshot.Results,
		TotalVotes:        snapshot.TotalVotes,
		ActiveVoters:      snapshot.ActiveVoters,
		PendingChallenges: h.challenges.Len(),
		UptimeSeconds:     time.Since(h.startedAt).Seconds(),
	})
}

// Reset handles POST /admin/reset (admin credential required)
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	empty := h.board.Reset()

	// Observers learn about the reset before they see the empty snapshot.
	h.hub.PublishReset()
	h.hub.PublishSnapshot(empty)

	slog.Info("tally reset", "by", claims.Identity)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All votes have been reset successfully",
	})
}

// Export handles GET /admin/export (admin credential required)
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	doc := h.board.Export(claims.Identity)

	w.Header().Set("Content-Disposition", "attachment; filename=voting-results.json")
	middleware.JSONResponse(w, http.StatusOK, doc)
}
