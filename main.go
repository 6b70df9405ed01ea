package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-telegram-bot/internal/bot"
	"github.com/ytget/yt-telegram-bot/internal/config"
	"github.com/ytget/yt-telegram-bot/internal/delivery"
	"github.com/ytget/yt-telegram-bot/internal/fetch"
	"github.com/ytget/yt-telegram-bot/internal/session"
	"github.com/ytget/yt-telegram-bot/internal/telegram"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger := log.New(os.Stdout, "yt-telegram-bot ", log.Ldate|log.Ltime|log.LUTC)
	logger.Printf("v%s starting", version)

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Resolve or download the yt-dlp binary before serving anything.
	ytdlp.MustInstall(ctx, nil)

	client, err := telegram.New(cfg.BotToken)
	if err != nil {
		logger.Fatalf("connect to telegram: %v", err)
	}
	logger.Printf("authorized as @%s", client.Self())

	fetcher := fetch.NewService(cfg, logger)
	deliverer := delivery.NewManager(client, logger)
	orchestrator := session.NewOrchestrator(cfg, fetcher, deliverer, client, logger)
	b := bot.New(client, orchestrator, logger)

	updates := client.Updates()
	go func() {
		<-ctx.Done()
		client.Stop()
	}()

	logger.Printf("serving updates")
	b.Serve(ctx, updates)
	logger.Printf("stopped")
}
