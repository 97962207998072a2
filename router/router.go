package router

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/hferdian/votely/catalog"
	"github.com/hferdian/votely/challenge"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/handlers"
	"github.com/hferdian/votely/hub"
	"github.com/hferdian/votely/middleware"
	"github.com/hferdian/votely/notify"
	"github.com/hferdian/votely/tally"
)

func NewRouter(cfg cliparse.Config, cat catalog.Catalog, challenges *challenge.Store, board *tally.Board, h *hub.Hub, notifier notify.Notifier, startedAt time.Time) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(challenges, board, notifier, cfg)
	voteHandler := handlers.NewVoteHandler(board, cat, h, cfg)
	adminHandler := handlers.NewAdminHandler(board, challenges, h, cfg, startedAt)
	liveHandler := handlers.NewLiveHandler(h, board, cfg)

	// 3 vote attempts per minute per caller
	voteLimiter := middleware.NewRateLimiter(rate.Every(20*time.Second), 3)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Challenge flow (public)
	mux.HandleFunc("POST /challenge", middleware.WithLogging(authHandler.RequestChallenge))
	mux.HandleFunc("POST /verify", middleware.WithLogging(authHandler.VerifyChallenge))

	// Voting (credential required for mutation and status)
	mux.HandleFunc("POST /vote", middleware.WithLogging(voteLimiter.Limit(
		middleware.RequireCredential(cfg.TokenSecret, voteHandler.Cast))))
	mux.HandleFunc("GET /vote/status", middleware.WithLogging(
		middleware.RequireCredential(cfg.TokenSecret, voteHandler.Status)))

	// Public reads
	mux.HandleFunc("GET /results", middleware.WithLogging(voteHandler.Results))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(voteHandler.Candidates))

	// Live observer channel (long-lived, logs its own connect/disconnect)
	mux.HandleFunc("GET /live", liveHandler.Serve)

	// Admin operations
	mux.HandleFunc("GET /admin/stats", middleware.WithLogging(
		middleware.RequireAdmin(cfg.TokenSecret, adminHandler.Stats)))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(
		middleware.RequireAdmin(cfg.TokenSecret, adminHandler.Reset)))
	mux.HandleFunc("GET /admin/export", middleware.WithLogging(
		middleware.RequireAdmin(cfg.TokenSecret, adminHandler.Export)))

	// Development-only endpoints; absent (404) in production
	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(challenges, board, cfg, startedAt)
		mux.HandleFunc("GET /dev/status", middleware.WithLogging(devHandler.Status))
		mux.HandleFunc("GET /dev/challenges", middleware.WithLogging(devHandler.ListChallenges))
		mux.HandleFunc("DELETE /dev/challenges", middleware.WithLogging(devHandler.ClearChallenges))
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("votely API v1"))
	})

	return mux
}
