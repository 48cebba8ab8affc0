package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appai "github.com/bryanwahyu/medscan/internal/application/ai"
	"github.com/bryanwahyu/medscan/internal/config"
	"github.com/bryanwahyu/medscan/internal/infra/ai/openai"
	"github.com/bryanwahyu/medscan/internal/infra/ai/prompt"
	"github.com/bryanwahyu/medscan/internal/infra/httpserver"
	"github.com/bryanwahyu/medscan/internal/infra/pdf"
	"github.com/bryanwahyu/medscan/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config, GEMINI_API_KEY wajib ada
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone error: %v", err)
	}

	// init AI client
	client := openai.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.UpstreamTimeout())

	// init service
	svc := appai.NewService(client, prompt.GetSystemPrompt(),
		appai.WithLocation(loc),
		appai.WithInspector(pdf.NewInspector()),
		appai.WithLogger(logger),
	)

	// init router
	handler := httpserver.NewRouter(svc, httpserver.Options{
		StaticDir:      cfg.Server.StaticDir,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		HealthCheckers: map[string]middleware.HealthChecker{
			"credentials": middleware.CredentialChecker{APIKey: cfg.Gemini.APIKey},
			"static":      middleware.StaticDirChecker{Dir: cfg.Server.StaticDir},
		},
		Logger: logger,
	})

	addr := cfg.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       60 * time.Second,
		// upstream analysis can take a while
		WriteTimeout: cfg.UpstreamTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		logger.Info("server listening", "addr", addr, "model", client.Model, "static_dir", cfg.Server.StaticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
