package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("the game is over, please start a new game")
	ErrInvalidRow       = errors.New("invalid row index")
	ErrInvalidColumn    = errors.New("invalid column index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidBoardSize = errors.New("board size must be at least 1")

	ErrStatsLoad = errors.New("could not load stats history")
	ErrStatsSave = errors.New("could not save stats history")
)
