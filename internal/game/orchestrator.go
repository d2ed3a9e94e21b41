// Package game drives one session: it alternates turns between the
// human collaborator and the bot service until the board is terminal.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type humanInput interface {
	HumanMove(ctx context.Context, board *entity.Board) (int, error)
}

type display interface {
	RenderCellNumbers()
	RenderBoard(board *entity.Board)
	ShowHumanTurn()
	ShowBotThinking()
	ShowBotMove(cell int)
	ShowVerdict(outcome string, marks entity.Marks)
}

type botService interface {
	PickMove(board *entity.Board, marks entity.Marks, difficulty entity.Difficulty) (int, error)
}

type Orchestrator struct {
	logger  *slog.Logger
	session *entity.Session
	input   humanInput
	display display
	bot     botService
}

func NewOrchestrator(logger *slog.Logger, session *entity.Session, input humanInput, display display, bot botService) *Orchestrator {
	return &Orchestrator{
		logger:  logger.With("component", "orchestrator", "session", session.ID),
		session: session,
		input:   input,
		display: display,
		bot:     bot,
	}
}

// Run plays the session to completion and returns the terminal outcome:
// the winning mark or entity.PlayerTie. X always moves first, whichever
// side holds it. A cancelled context or an interrupted input ends the
// session with apperror.ErrSessionInterrupted instead of an outcome.
func (that *Orchestrator) Run(ctx context.Context) (string, error) {
	board := that.session.Board
	marks := that.session.Marks

	that.display.RenderCellNumbers()
	that.display.RenderBoard(board)

	turn := entity.PlayerX
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrSessionInterrupted, err)
		}

		cell, err := that.nextMove(ctx, turn)
		if err != nil {
			return "", err
		}

		if err = board.PlaceMove(cell, turn); err != nil {
			return "", fmt.Errorf("failed to apply move: %w", err)
		}

		if turn == marks.Bot {
			that.display.ShowBotMove(cell)
		}

		that.display.RenderBoard(board)

		if outcome := board.Winner(); outcome != entity.EmptyCell {
			that.logger.Info("session finished", "outcome", outcome)
			that.display.ShowVerdict(outcome, marks)

			return outcome, nil
		}

		turn = entity.OppositeMark(turn)
	}
}

func (that *Orchestrator) nextMove(ctx context.Context, turn string) (int, error) {
	board := that.session.Board

	if turn == that.session.Marks.Human {
		that.display.ShowHumanTurn()

		cell, err := that.input.HumanMove(ctx, board)
		if err != nil {
			return 0, fmt.Errorf("failed to get human move: %w", err)
		}

		return cell, nil
	}

	that.display.ShowBotThinking()

	cell, err := that.bot.PickMove(board, that.session.Marks, that.session.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("bot failed to pick move: %w", err)
	}

	that.logger.Debug("bot move", "cell", cell, "difficulty", that.session.Difficulty)

	return cell, nil
}
