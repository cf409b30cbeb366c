package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/question-desk/internal/config"
	"github.com/aliskhannn/question-desk/internal/delivery/telegram"
	"github.com/aliskhannn/question-desk/internal/delivery/web"
	"github.com/aliskhannn/question-desk/internal/logger"
	"github.com/aliskhannn/question-desk/internal/repository"
	"github.com/aliskhannn/question-desk/internal/service"
)

// newBot connects to Telegram. Tests replace it.
var newBot = func(lg *zap.Logger, cfg config.Telegram) (telegram.Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.APIToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = cfg.Debug
	lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	return bot, nil
}

func main() {
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, cfg, lg)
	stop()

	if err != nil {
		lg.Error("question desk stopped with error", zap.Error(err))
		_ = lg.Sync()
		os.Exit(1)
	}

	lg.Info("shutdown signal received")
	_ = lg.Sync()
}

// run wires the services and blocks until ctx is cancelled or a component fails.
func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	// Initialize backend client and services.
	questionRepo := repository.NewQuestionRepository(repository.Options{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		UserAgent: cfg.Backend.UserAgent,
	})
	questionService := service.NewQuestionService(questionRepo)

	var tg *telegram.Handler
	if cfg.Telegram.Enabled {
		bot, err := newBot(lg, cfg.Telegram)
		if err != nil {
			return fmt.Errorf("create telegram bot: %w", err)
		}
		tg = telegram.NewHandler(bot, lg.Named("telegram"), questionService)
	}

	g, ctx := errgroup.WithContext(ctx)

	handler := web.NewHandler(lg.Named("web"), questionService)
	server := web.NewServer(lg.Named("http"), cfg.HTTP, handler.Routes())
	g.Go(func() error {
		return server.Run(ctx)
	})

	if tg != nil {
		g.Go(func() error {
			return tg.Run(ctx)
		})
	}

	lg.Info("question desk started",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	return g.Wait()
}
