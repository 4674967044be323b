package entity

// Mark is the value held by a board cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Board holds the cells in row-major order: index = row*3 + col.
type Board [BoardSize]Mark

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

// WithMark returns a copy of the board with cell set to mark.
func (that Board) WithMark(cell int, mark Mark) Board {
	that[cell] = mark
	return that
}

// MarkForStep returns the player who moves at the given step. X always opens.
func MarkForStep(step int) Mark {
	if step%2 == 0 {
		return PlayerX
	}
	return PlayerO
}
