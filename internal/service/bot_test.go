package service

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func newTestBot(seed int64) BotService {
	return NewBotService(slog.Default(), rand.New(rand.NewSource(seed)))
}

func TestBotService_PickMove(t *testing.T) {
	marks := entity.Marks{Bot: entity.PlayerX, Human: entity.PlayerO}

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a full board
		board := &entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}

		// When: asking for a move
		_, err := newTestBot(1).PickMove(board, marks, entity.DifficultyHard)

		// Then: the precondition violation surfaces as an error
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Returns an error for an unknown difficulty", func(t *testing.T) {
		// Given: an empty board and an invalid difficulty
		board := entity.NewBoard()

		// When: asking for a move
		_, err := newTestBot(1).PickMove(board, marks, entity.Difficulty("nightmare"))

		// Then: it fails with ErrUnknownDifficulty
		assert.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Easy returns the only free slot when one remains", func(t *testing.T) {
		// Given: a board with a single free cell
		board := &entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		}

		// When: asking for an easy move
		cell, err := newTestBot(1).PickMove(board, marks, entity.DifficultyEasy)

		// Then: the single option is chosen deterministically
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Easy always returns a free slot", func(t *testing.T) {
		// Given: a board mid-game
		board := &entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		bot := newTestBot(3)

		for i := 0; i < 20; i++ {
			// When: asking for an easy move
			cell, err := bot.PickMove(board, marks, entity.DifficultyEasy)

			// Then: the move is one of the free slots
			require.NoError(t, err)
			assert.Contains(t, board.FreeSlots(), cell)
		}
	})

	t.Run("Hard completes the winning row", func(t *testing.T) {
		// Given: bot X can win the top row at cell 2
		board := &entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: asking for a hard move
		cell, err := newTestBot(1).PickMove(board, marks, entity.DifficultyHard)

		// Then: the winning cell is chosen and ends the game
		require.NoError(t, err)
		require.Equal(t, 2, cell)

		require.NoError(t, board.PlaceMove(cell, marks.Bot))
		assert.Equal(t, entity.PlayerX, board.Winner())
	})

	t.Run("Medium takes a forced win over any other move", func(t *testing.T) {
		// Given: bot X can win the top row at cell 2
		board := &entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		bot := newTestBot(5)
		for i := 0; i < 10; i++ {
			// When: asking for a medium move repeatedly
			cell, err := bot.PickMove(board, marks, entity.DifficultyMedium)

			// Then: only the winning cell scores highest, so it is always chosen
			require.NoError(t, err)
			assert.Equal(t, 2, cell)
		}
	})

	t.Run("Medium never picks a move scoring below the best available", func(t *testing.T) {
		// Given: a mid-game position and an independent scoring pass
		board := &entity.Board{
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		topSet := make(map[int]bool)
		bestScore := engine.AlphaInit
		for _, slot := range board.FreeSlots() {
			trial := *board
			require.NoError(t, trial.PlaceMove(slot, marks.Bot))
			score, _ := engine.Minimax(&trial, marks.Human, marks, engine.AlphaInit, engine.BetaInit)
			if score > bestScore {
				bestScore = score
				topSet = map[int]bool{slot: true}
			} else if score == bestScore {
				topSet[slot] = true
			}
		}

		bot := newTestBot(11)
		for i := 0; i < 50; i++ {
			// When: asking for a medium move
			cell, err := bot.PickMove(board, marks, entity.DifficultyMedium)

			// Then: the move belongs to the verified top-scoring set
			require.NoError(t, err)
			assert.True(t, topSet[cell], "cell %d is not among the top-scoring moves %v", cell, topSet)
		}
	})

	t.Run("Medium with the same seed replays the same move sequence", func(t *testing.T) {
		// Given: two selectors with identical seeds and the same board
		board := &entity.Board{
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		first := newTestBot(21)
		second := newTestBot(21)

		for i := 0; i < 10; i++ {
			// When: asking both for a move
			cellFirst, errFirst := first.PickMove(board, marks, entity.DifficultyMedium)
			cellSecond, errSecond := second.PickMove(board, marks, entity.DifficultyMedium)

			// Then: the choices match
			require.NoError(t, errFirst)
			require.NoError(t, errSecond)
			assert.Equal(t, cellFirst, cellSecond)
		}
	})

	t.Run("Selector leaves the board unchanged", func(t *testing.T) {
		// Given: a mid-game position
		board := &entity.Board{
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		snapshot := *board

		// When: evaluating every difficulty
		bot := newTestBot(31)
		for _, difficulty := range []entity.Difficulty{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard} {
			_, err := bot.PickMove(board, marks, difficulty)
			require.NoError(t, err)
		}

		// Then: the board was not mutated
		assert.Equal(t, snapshot, *board)
	})
}
