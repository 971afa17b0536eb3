package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adwaithak112-byte/emotion-dashboard/config"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/analysis"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/classifier"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/logging"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()

	sentiment, emotion, onnx, backend := initBackend(cfg)
	if onnx != nil {
		defer onnx.Close()
	}

	scorer := analysis.NewScorer(sentiment, emotion)

	srv, err := server.NewServer(cfg, scorer, backend)
	if err != nil {
		slog.Error("[Main] Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped unexpectedly", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()
	slog.Info("[Main] Dashboard listening",
		slog.String("addr", cfg.ServerAddr),
		slog.String("backend", backend))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("[Main] Shutdown signal received, cleaning up...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Server shutdown error", slog.String("error", err.Error()))
	}
}

// initBackend loads the configured classifier backend. When the ONNX
// models cannot load the dashboard stays usable on the VADER lexicon,
// with emotion output degraded to the neutral fallback.
func initBackend(cfg *config.Config) (classifier.Sentiment, classifier.Emotion, *classifier.ONNXBackend, string) {
	if cfg.Backend != config.BackendVader {
		backend, err := classifier.LoadONNX(cfg.ModelDir)
		if err == nil {
			return backend, backend, backend, config.BackendONNX
		}
		slog.Error("[Main] ONNX backend failed to load, falling back to VADER",
			slog.String("error", err.Error()))
	}

	vader := classifier.NewVader()
	return vader, vader, nil, config.BackendVader
}
