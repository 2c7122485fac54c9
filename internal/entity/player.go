package entity

type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Opponent returns the mark that moves after the receiver.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return string(that)
}

type Cell string

const (
	EmptyCell Cell = ""
	CellX     Cell = Cell(PlayerX)
	CellO     Cell = Cell(PlayerO)
)

func (that Player) Cell() Cell {
	return Cell(that)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Board is a square grid indexed as board[row][col].
type Board [][]Cell

func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Cell, size)
	}

	return board
}

// Clone returns a deep copy so callers can't reach the original rows.
func (that Board) Clone() Board {
	board := make(Board, len(that))
	for row := range that {
		board[row] = append([]Cell(nil), that[row]...)
	}

	return board
}
