package game

import "strings"

// Board is the 3x3 grid, indexed [row][col].
type Board [size][size]Symbol

func (board *Board) CellAt(row, col uint) Symbol {
	if row < size && col < size {
		return board[row][col]
	}
	return Empty
}

func (board *Board) at(move Move) Symbol {
	return board[move.Row][move.Col]
}

// winner returns the symbol and cells of the first complete line, or Empty.
func (board *Board) winner() (Symbol, [size]Move) {
	for _, line := range lines {
		symbol := board.at(line[0])
		if symbol != Empty && board.at(line[1]) == symbol && board.at(line[2]) == symbol {
			return symbol, line
		}
	}
	return Empty, [size]Move{}
}

func (board *Board) hasLine(symbol Symbol) bool {
	for _, line := range lines {
		if board.at(line[0]) == symbol && board.at(line[1]) == symbol && board.at(line[2]) == symbol {
			return true
		}
	}
	return false
}

func (board *Board) count(symbol Symbol) int {
	n := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == symbol {
				n++
			}
		}
	}
	return n
}

// String prints one row per line using X, O and '.'.
func (board *Board) String() string {
	rows := make([]string, size)
	for i, row := range board {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(cell.serialize())
		}
		rows[i] = sb.String()
	}
	return strings.Join(rows, "\n")
}
