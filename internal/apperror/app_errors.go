package apperror

import "errors"

var (
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrUnknownDifficulty  = errors.New("unknown difficulty")
	ErrUnknownMark        = errors.New("unknown player mark")
	ErrSessionInterrupted = errors.New("session interrupted")
)
