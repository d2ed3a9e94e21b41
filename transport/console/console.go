// Package console is the terminal collaborator of the game loop: it
// prompts for session setup and moves, and renders the board.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type Console struct {
	logger *slog.Logger
	reader *bufio.Reader
	output *termenv.Output
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, colored bool) *Console {
	opts := []termenv.OutputOption{}
	if !colored {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		output: termenv.NewOutput(out, opts...),
	}
}

func (that *Console) ShowWelcome() {
	fmt.Fprintln(that.output, that.output.String("Welcome to Tic Tac Toe AI!").Bold())
}

// ChooseSide asks the player to pick X or O, reprompting on anything
// else. X always moves first.
func (that *Console) ChooseSide(ctx context.Context) (string, error) {
	for {
		fmt.Fprint(that.output, "Do you want X or O? (X starts): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(line) {
		case entity.PlayerX:
			return entity.PlayerX, nil
		case entity.PlayerO:
			return entity.PlayerO, nil
		}

		fmt.Fprintln(that.output, "Please choose X or O.")
	}
}

// ChooseDifficulty asks for a difficulty, using fallback on empty input.
func (that *Console) ChooseDifficulty(ctx context.Context, fallback entity.Difficulty) (entity.Difficulty, error) {
	for {
		fmt.Fprintf(that.output, "Difficulty (easy/medium/hard) [%s]: ", fallback)

		line, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		if line == "" {
			return fallback, nil
		}

		difficulty, err := entity.ParseDifficulty(line)
		if err != nil {
			fmt.Fprintln(that.output, "Enter easy, medium or hard.")
			continue
		}

		return difficulty, nil
	}
}

// HumanMove reads a cell number 1-9 and returns the 0-based index,
// reprompting until the cell is free. Only valid indices ever reach the
// orchestrator.
func (that *Console) HumanMove(ctx context.Context, board *entity.Board) (int, error) {
	slots := board.FreeSlots()

	for {
		fmt.Fprint(that.output, "Pick a cell (1-9): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		number, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(that.output, "Enter a number from 1 to 9.")
			continue
		}

		cell := number - 1
		if !slices.Contains(slots, cell) {
			fmt.Fprintln(that.output, "Cell taken or invalid, try again.")
			continue
		}

		return cell, nil
	}
}

func (that *Console) ShowGoodbye() {
	fmt.Fprintln(that.output, "\nGame interrupted. Goodbye!")
}

// readLine blocks on the underlying reader; a cancelled context is only
// noticed between reads. EOF means the player closed the input stream
// and ends the session.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrSessionInterrupted, err)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: input closed", apperror.ErrSessionInterrupted)
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
