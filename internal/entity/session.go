package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps user or config input to a Difficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(value))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// Marks is the fixed mark assignment for one session: the human and
// the bot always hold the complementary {X, O} pair.
type Marks struct {
	Human string
	Bot   string
}

// Session is the state of one game: board, mark assignment and
// difficulty are set once at start and live until the game ends.
type Session struct {
	ID         string
	Marks      Marks
	Difficulty Difficulty
	Board      *Board
}

func NewSession(humanMark string, difficulty Difficulty) (*Session, error) {
	if humanMark != PlayerX && humanMark != PlayerO {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, humanMark)
	}

	return &Session{
		ID: uuid.NewString(),
		Marks: Marks{
			Human: humanMark,
			Bot:   OppositeMark(humanMark),
		},
		Difficulty: difficulty,
		Board:      NewBoard(),
	}, nil
}
