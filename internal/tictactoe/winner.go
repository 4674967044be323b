package tictactoe

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

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

// Winner returns the mark that completed a line, if any. A drawn board has no winner.
func Winner(board entity.Board) (entity.Mark, bool) {
	combo, ok := WinningLine(board)
	if !ok {
		return entity.EmptyCell, false
	}

	return board[combo[0]], true
}

// WinningLine returns the first completed triple on the board.
func WinningLine(board entity.Board) ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

// IsFull reports whether no empty cell is left.
func IsFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}
