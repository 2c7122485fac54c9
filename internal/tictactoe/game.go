package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const DefaultBoardSize = 3

// Game owns one round of N x N tic-tac-toe and the win/draw counters of the session.
type Game struct {
	size          int
	board         entity.Board
	currentPlayer entity.Player
	moveCount     int
	outcome       entity.Outcome
	stats         entity.Stats
}

func NewGame(size int) (*Game, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	game := &Game{size: size}
	game.Clear()

	return game, nil
}

// MakeMove puts the current player's mark at (row, col). A failed move leaves the game untouched.
func (that *Game) MakeMove(row, col int) error {
	if err := that.validateMove(row, col); err != nil {
		return err
	}

	mover := that.currentPlayer
	that.board[row][col] = mover.Cell()
	that.moveCount++

	switch {
	case that.hasLine(row, col, mover):
		that.outcome = entity.Win(mover)
		if mover == entity.PlayerX {
			that.stats.X++
		} else {
			that.stats.O++
		}
	case that.isBoardFull():
		that.outcome = entity.Draw()
		that.stats.Draw++
	default:
		that.currentPlayer = mover.Opponent()
	}

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(row, col int) error {
	if that.outcome.IsFinished() {
		return apperror.ErrGameFinished
	}

	if row < 0 || row >= that.size {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidRow, row)
	}

	if col < 0 || col >= that.size {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, col)
	}

	if !that.board[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// hasLine only looks at the lines running through (row, col).
func (that *Game) hasLine(row, col int, player entity.Player) bool {
	mark := player.Cell()

	if that.lineOf(mark, func(i int) entity.Cell { return that.board[row][i] }) {
		return true
	}

	if that.lineOf(mark, func(i int) entity.Cell { return that.board[i][col] }) {
		return true
	}

	// main diagonal: (0,0), (1,1), (2,2)
	if row == col && that.lineOf(mark, func(i int) entity.Cell { return that.board[i][i] }) {
		return true
	}

	// anti-diagonal: (0,2), (1,1), (2,0)
	last := that.size - 1
	return row+col == last && that.lineOf(mark, func(i int) entity.Cell { return that.board[i][last-i] })
}

func (that *Game) lineOf(mark entity.Cell, at func(i int) entity.Cell) bool {
	for i := range that.size {
		if at(i) != mark {
			return false
		}
	}

	return true
}

func (that *Game) isBoardFull() bool {
	return that.moveCount == that.size*that.size
}

// loser picks who opens the next round. X opens after a draw or an unfinished round.
func (that *Game) loser() entity.Player {
	if that.outcome.Status != entity.StatusWin {
		return entity.PlayerX
	}
	return that.outcome.Winner.Opponent()
}

// Reset starts a new round. The session stats are kept.
func (that *Game) Reset() {
	that.currentPlayer = that.loser()
	that.board = entity.NewBoard(that.size)
	that.moveCount = 0
	that.outcome = entity.InProgress()
}

// Clear puts the game back into its freshly created state, stats included.
func (that *Game) Clear() {
	that.currentPlayer = entity.PlayerX
	that.board = entity.NewBoard(that.size)
	that.moveCount = 0
	that.outcome = entity.InProgress()
	that.stats = entity.Stats{}
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) HasEnded() bool {
	return that.outcome.IsFinished()
}

// Board returns a copy of the grid.
func (that *Game) Board() entity.Board {
	return that.board.Clone()
}

func (that *Game) Stats() entity.Stats {
	return that.stats
}

func (that *Game) Size() int {
	return that.size
}

func (that *Game) MoveCount() int {
	return that.moveCount
}
