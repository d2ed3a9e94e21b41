// Package engine implements exhaustive minimax search with alpha-beta
// pruning over a tic-tac-toe board.
package engine

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Terminal scores from the bot's point of view.
const (
	ScoreBotWin   = 1
	ScoreTie      = 0
	ScoreHumanWin = -1
)

// NoMove is returned as the best cell at terminal nodes, where there is
// no move to make.
const NoMove = -1

// Alpha-beta seeds for a fresh search.
const (
	AlphaInit = math.MinInt
	BetaInit  = math.MaxInt
)

// Minimax walks every reachable continuation of the board and returns
// the guaranteed score for the side to move together with the first
// cell that achieves it. The bot mark maximizes, the human mark
// minimizes. Candidate cells are tried in ascending index order and
// strict comparisons keep the earliest cell on score ties.
//
// The board is mutated in place and every trial move is undone before
// the next candidate, so the board is bit-for-bit unchanged when
// Minimax returns.
func Minimax(board *entity.Board, turn string, marks entity.Marks, alpha, beta int) (int, int) {
	switch board.Winner() {
	case marks.Bot:
		return ScoreBotWin, NoMove
	case marks.Human:
		return ScoreHumanWin, NoMove
	case entity.PlayerTie:
		return ScoreTie, NoMove
	}

	if turn == marks.Bot {
		return maximize(board, marks, alpha, beta)
	}

	return minimize(board, marks, alpha, beta)
}

func maximize(board *entity.Board, marks entity.Marks, alpha, beta int) (int, int) {
	bestScore := AlphaInit
	bestCell := NoMove

	for _, cell := range board.FreeSlots() {
		board[cell] = marks.Bot
		score, _ := Minimax(board, marks.Human, marks, alpha, beta)
		board.ClearCell(cell)

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}

		alpha = max(alpha, bestScore)
		if beta <= alpha {
			break
		}
	}

	return bestScore, bestCell
}

func minimize(board *entity.Board, marks entity.Marks, alpha, beta int) (int, int) {
	worstScore := BetaInit
	bestCell := NoMove

	for _, cell := range board.FreeSlots() {
		board[cell] = marks.Human
		score, _ := Minimax(board, marks.Bot, marks, alpha, beta)
		board.ClearCell(cell)

		if score < worstScore {
			worstScore = score
			bestCell = cell
		}

		beta = min(beta, worstScore)
		if beta <= alpha {
			break
		}
	}

	return worstScore, bestCell
}
