package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/manas-deriv/slack-travel-agent/internal/adapters/planner"
	"github.com/manas-deriv/slack-travel-agent/internal/adapters/slackgw"
	"github.com/manas-deriv/slack-travel-agent/internal/adapters/visa"
	"github.com/manas-deriv/slack-travel-agent/internal/config"
	"github.com/manas-deriv/slack-travel-agent/internal/useCases"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Env)

	questions, err := config.LoadQuestions(cfg.QuestionsFile)
	if err != nil {
		logger.Error("load questions", "error", err)
		os.Exit(1)
	}

	gateway := slackgw.NewClient(cfg.SlackBotToken, cfg.SlackAppToken, logger.With("component", "slack"))
	engine := planner.NewPlanner(cfg, logger.With("component", "planner"))

	store := useCases.NewSessionStore()
	intake := useCases.NewIntake(
		logger.With("component", "intake"),
		gateway,
		engine,
		visa.NewDirectory(),
		store,
		questions,
	)
	supervisor := useCases.NewSupervisor(logger.With("component", "supervisor"), gateway, intake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	if err := supervisor.Run(ctx); err != nil {
		logger.Error("supervisor stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("exit")
}

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return logger
}
