package service

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type BotService interface {
	PickMove(board *entity.Board, marks entity.Marks, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// NewBotService returns a move selector. The random source is injected
// so tests can seed it.
func NewBotService(logger *slog.Logger, rng *rand.Rand) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rng:    rng,
	}
}

// PickMove chooses a cell among the board's free slots according to the
// difficulty policy. Calling it on a full board is an orchestrator bug
// and surfaces as ErrNoAvailableMoves.
func (that *botService) PickMove(board *entity.Board, marks entity.Marks, difficulty entity.Difficulty) (int, error) {
	slots := board.FreeSlots()
	if len(slots) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return slots[that.rng.Intn(len(slots))], nil
	case entity.DifficultyMedium:
		return that.pickAmongBest(board, marks, slots), nil
	case entity.DifficultyHard:
		return that.pickBest(board, marks, slots), nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// pickAmongBest scores every free slot with optimal counter-play from
// the human and picks uniformly among the top-scoring ones. Only the
// tie-break is randomized: a move scoring below the best is never
// chosen.
func (that *botService) pickAmongBest(board *entity.Board, marks entity.Marks, slots []int) int {
	bestScore := engine.AlphaInit
	var top []int

	for _, cell := range slots {
		board[cell] = marks.Bot
		score, _ := engine.Minimax(board, marks.Human, marks, engine.AlphaInit, engine.BetaInit)
		board.ClearCell(cell)

		switch {
		case score > bestScore:
			bestScore = score
			top = append(top[:0], cell)
		case score == bestScore:
			top = append(top, cell)
		}
	}

	return top[that.rng.Intn(len(top))]
}

// pickBest returns the search's best cell, falling back to a random
// free slot if the search could not name one.
func (that *botService) pickBest(board *entity.Board, marks entity.Marks, slots []int) int {
	score, cell := engine.Minimax(board, marks.Bot, marks, engine.AlphaInit, engine.BetaInit)
	if cell == engine.NoMove {
		that.logger.Warn("search returned no move, falling back to random", "free_slots", len(slots))
		return slots[that.rng.Intn(len(slots))]
	}

	that.logger.Debug("picked best move", "cell", cell, "score", score)

	return cell
}
