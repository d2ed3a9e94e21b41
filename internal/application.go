package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/game"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/transport/console"
)

// RunApp - runs one game session against the bot.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	fallback, err := entity.ParseDifficulty(conf.Difficulty)
	if err != nil {
		return fmt.Errorf("invalid configured difficulty: %w", err)
	}

	cons := console.New(logger, os.Stdin, os.Stdout, conf.Color)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness, not security

	// The console blocks on stdin, so the session runs in its own
	// goroutine and a signal ends the process without waiting for it.
	errCh := make(chan error, 1)
	go func() {
		errCh <- playSession(ctx, logger, cons, fallback, rng)
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, apperror.ErrSessionInterrupted) {
			cons.ShowGoodbye()
		}

		return err
	case <-ctx.Done():
		cons.ShowGoodbye()

		return apperror.ErrSessionInterrupted
	}
}

func playSession(ctx context.Context, logger *slog.Logger, cons *console.Console, fallback entity.Difficulty, rng *rand.Rand) error {
	log := logger.With("component", "app")

	cons.ShowWelcome()

	humanMark, err := cons.ChooseSide(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose side: %w", err)
	}

	difficulty, err := cons.ChooseDifficulty(ctx, fallback)
	if err != nil {
		return fmt.Errorf("failed to choose difficulty: %w", err)
	}

	session, err := entity.NewSession(humanMark, difficulty)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session started", "session", session.ID, "human", session.Marks.Human, "difficulty", session.Difficulty)

	bot := service.NewBotService(logger, rng)
	orchestrator := game.NewOrchestrator(logger, session, cons, cons, bot)

	outcome, err := orchestrator.Run(ctx)
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("session finished", "session", session.ID, "outcome", outcome)

	return nil
}
