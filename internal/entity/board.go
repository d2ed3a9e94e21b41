package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// WinCombos lists every winning triple: rows, columns, diagonals.
// Winner checks them in exactly this order.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major: index = row*3 + col.
type Board [9]string

func NewBoard() *Board {
	return &Board{}
}

// FreeSlots returns the indices of empty cells in ascending order.
// An empty result means the board is full.
func (that *Board) FreeSlots() []int {
	slots := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			slots = append(slots, i)
		}
	}

	return slots
}

// Winner returns the mark of the winning player, PlayerTie when the
// board is full without a winning line, or EmptyCell while the game
// continues. A full board with a completed line reports the win, not
// a tie.
func (that *Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range that {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

// PlaceMove puts mark on the given cell. Placing on an occupied or
// out-of-range cell is a caller bug and fails with an error instead of
// corrupting the board.
func (that *Board) PlaceMove(cell int, mark string) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

// ClearCell restores a cell to empty. It is the undo half of the
// place-then-undo discipline the search relies on.
func (that *Board) ClearCell(cell int) {
	that[cell] = EmptyCell
}

func (that *Board) IsFull() bool {
	return len(that.FreeSlots()) == 0
}

// OppositeMark returns the complementary mark of the {X, O} pair.
func OppositeMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
