package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hferdian/votely/catalog"
	"github.com/hferdian/votely/challenge"
	"github.com/hferdian/votely/cliparse"
	"github.com/hferdian/votely/hub"
	"github.com/hferdian/votely/middleware"
	"github.com/hferdian/votely/notify"
	"github.com/hferdian/votely/router"
	"github.com/hferdian/votely/tally"
)

// sweepInterval is how often expired challenges are dropped from memory.
const sweepInterval = time.Minute

func main() {
	var err error

	// Local development keeps secrets in a .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Wire up the in-memory state
	cat := catalog.Default()
	challenges := challenge.NewStore()
	board := tally.NewBoard()
	broadcast := hub.New()

	var notifier notify.Notifier
	if cfg.IsDevelopment() {
		notifier = notify.LogNotifier{}
	} else {
		notifier = notify.SMTPNotifier{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		}
	}

	// Periodic sweep keeps the challenge table from growing unbounded.
	// Verify rejects expired challenges either way.
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if removed := challenges.Sweep(); removed > 0 {
				slog.Info("swept expired challenges", "removed", removed)
			}
		}
	}()

	// Create router
	mux := router.NewRouter(cfg, cat, challenges, board, broadcast, notifier, time.Now())

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "env", cfg.Env)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
