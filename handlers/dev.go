package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/hferdian/votely/challenge"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/middleware"
	"github.com/hferdian/votely/models"
	"github.com/hferdian/votely/tally"
)

// DevHandler serves the development-only endpoints. The router registers
// them only when cfg.IsDevelopment(), so production answers 404.
type DevHandler struct {
	challenges *challenge.Store
	board      *tally.Board
	cfg        cliparse.Config
	startedAt  time.Time
}

func NewDevHandler(challenges *challenge.Store, board *tally.Board, cfg cliparse.Config, startedAt time.Time) *DevHandler {
	return &DevHandler{challenges: challenges, board: board, cfg: cfg, startedAt: startedAt}
}

// Status handles GET /dev/status
func (h *DevHandler) Status(w http.ResponseWriter, r *http.Request) {
	snapshot := h.board.Snapshot()
	middleware.JSONResponse(w, http.StatusOK, models.DevStatusResponse{
		Mode:              h.cfg.Env,
		UptimeSeconds:     time.Since(h.startedAt).Seconds(),
		TotalVotes:        snapshot.TotalVotes,
		ActiveVoters:      snapshot.ActiveVoters,
		PendingChallenges: h.challenges.Len(),
	})
}

// ListChallenges handles GET /dev/challenges. Codes included; development
// mode only.
func (h *DevHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	pending := h.challenges.Pending()
	sort.Slice(pending, func(i, j int) bool { return pending[i].Identity < pending[j].Identity })

	now := time.Now()
	infos := make([]models.DevChallengeInfo, 0, len(pending))
	for _, ch := range pending {
		infos = append(infos, models.DevChallengeInfo{
			Identity:    ch.Identity,
			DisplayName: ch.DisplayName,
			Code:        ch.Code,
			ExpiresAt:   ch.ExpiresAt,
			Attempts:    ch.Attempts,
			Expired:     now.After(ch.ExpiresAt),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.DevChallengesResponse{
		Total:      len(infos),
		Challenges: infos,
	})
}

// ClearChallenges handles DELETE /dev/challenges
func (h *DevHandler) ClearChallenges(w http.ResponseWriter, r *http.Request) {
	h.challenges.Clear()
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All challenges cleared",
	})
}
