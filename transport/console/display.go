package console

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// RenderBoard prints the current grid, marks colored when the terminal
// supports it.
func (that *Console) RenderBoard(board *entity.Board) {
	that.renderGrid(func(cell int) string {
		return that.styledMark(board[cell])
	})
}

// RenderCellNumbers prints the 1-9 cell numbering the move prompt
// refers to.
func (that *Console) RenderCellNumbers() {
	fmt.Fprintln(that.output, "Cell numbers:")
	that.renderGrid(func(cell int) string {
		return that.output.String(strconv.Itoa(cell + 1)).Faint().String()
	})
}

func (that *Console) ShowHumanTurn() {
	fmt.Fprintln(that.output, "Your move:")
}

func (that *Console) ShowBotThinking() {
	fmt.Fprintln(that.output, "Computer thinking...")
}

func (that *Console) ShowBotMove(cell int) {
	fmt.Fprintf(that.output, "Computer placed at %d\n", cell+1)
}

func (that *Console) ShowVerdict(outcome string, marks entity.Marks) {
	switch outcome {
	case entity.PlayerTie:
		fmt.Fprintln(that.output, "It's a tie!")
	case marks.Human:
		fmt.Fprintln(that.output, that.output.String("You win!").Bold())
	default:
		fmt.Fprintln(that.output, that.output.String("Computer wins!").Bold())
	}
}

func (that *Console) renderGrid(cell func(int) string) {
	fmt.Fprintln(that.output)
	for row := 0; row < 3; row++ {
		fmt.Fprintf(that.output, " %s | %s | %s\n", cell(row*3), cell(row*3+1), cell(row*3+2))
		if row < 2 {
			fmt.Fprintln(that.output, "---+---+---")
		}
	}
	fmt.Fprintln(that.output)
}

func (that *Console) styledMark(mark string) string {
	switch mark {
	case entity.PlayerX:
		return that.output.String(mark).Bold().Foreground(termenv.ANSIRed).String()
	case entity.PlayerO:
		return that.output.String(mark).Bold().Foreground(termenv.ANSICyan).String()
	default:
		return " "
	}
}
