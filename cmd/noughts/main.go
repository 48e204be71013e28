package main

import (
	"context"
	"ctchen222/Noughts-And-Crosses/internal/bot"
	"ctchen222/Noughts-And-Crosses/internal/config"
	"ctchen222/Noughts-And-Crosses/internal/events"
	"ctchen222/Noughts-And-Crosses/internal/game"
	"ctchen222/Noughts-And-Crosses/internal/logger"
	"ctchen222/Noughts-And-Crosses/internal/session"
	"ctchen222/Noughts-And-Crosses/internal/telemetry"
	"ctchen222/Noughts-And-Crosses/internal/tui"
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const inboxSize = 64

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitOtel(telemetry.Settings{
			TraceFile:  cfg.Telemetry.TraceFile,
			MetricFile: cfg.Telemetry.MetricFile,
			LogFile:    cfg.Telemetry.LogFile,
		})
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Initialize logging
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to parse log level: %v", err)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger.Init(level, logFile)

	difficulty, err := game.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		log.Fatalf("invalid difficulty: %v", err)
	}
	persona, err := game.ParsePersona(cfg.Persona)
	if err != nil {
		log.Fatalf("invalid persona: %v", err)
	}

	// Each goroutine gets its own source; *rand.Rand is not safe for concurrent use.
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sessionRng := rand.New(rand.NewPCG(seed, 1))
	opponentRng := rand.New(rand.NewPCG(seed, 2))

	inbox := make(chan events.Event, inboxSize)

	opponent := bot.NewOpponent(inbox, bot.NewMoveCalculator(opponentRng), bot.TimerWaiter{}, opponentRng,
		bot.WithPacingScale(cfg.PacingScale))
	go opponent.Run(ctx)

	s := session.New(game.NewGame(difficulty, persona), inbox, opponent, sessionRng)
	model := tui.New(inbox, s.Views(), s.Snapshot())

	sessionErr := make(chan error, 1)
	go func() {
		sessionErr <- s.Run(ctx)
	}()

	slog.InfoContext(ctx, "Noughts and Crosses started", "difficulty", difficulty, "persona", persona, "seed", seed)

	if err := tui.Run(ctx, model); err != nil {
		slog.ErrorContext(ctx, "Terminal UI failed", "error", err)
	}

	stop()
	if err := <-sessionErr; err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "Session ended with error", "error", err)
		log.Fatalf("session failed: %v", err)
	}
	<-opponent.Done()

	slog.Info("Noughts and Crosses exiting")
}
