package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/api"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/chat"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/config"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/events"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/groq"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/notify"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/persona"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("support-bot starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A hole in the persona table is a configuration defect, so it
	// fails the boot rather than a request.
	if err := persona.Validate(); err != nil {
		slog.Error("persona table invalid", "error", err)
		os.Exit(1)
	}

	// Database (optional — without it conversations live in memory and
	// no transcripts are written)
	var db *store.Store
	var convs conversation.Store
	var transcripts chat.TranscriptStore
	mode := "memory"
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		convs = db.Conversations()
		transcripts = db
		mode = "durable"
		slog.Info("database connected")
	} else {
		convs = conversation.NewMemoryStore()
		slog.Warn("DATABASE_URL not set — conversations in memory, transcripts disabled")
	}

	// Groq client (optional — without it every reply is the missing-key fallback)
	var completion chat.CompletionClient
	if cfg.GroqAPIKey != "" {
		completion = groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
		slog.Info("groq client ready", "model", cfg.GroqModel)
	} else {
		slog.Warn("GROQ_API_KEY not set — serving fallback replies only")
	}
	gateway := chat.NewGateway(completion, slog.Default())

	// Escalation webhook (optional)
	var notifier chat.Notifier
	if cfg.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.WebhookURL, slog.Default())
		slog.Info("escalation webhook ready")
	} else {
		slog.Warn("escalation webhook not configured")
	}

	// Event bus (optional)
	var bus chat.Publisher
	if cfg.NatsURL != "" {
		busClient, err := events.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer busClient.Close()
		bus = busClient
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	svc := chat.NewService(convs, transcripts, gateway, notifier, bus, slog.Default())

	// HTTP API
	srv := api.NewServer(cfg.Port, svc, mode)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if bus != nil {
		if err := bus.Publish(events.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("support-bot ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("support-bot stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
