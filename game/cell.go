package game

import "fmt"

func (symbol Symbol) String() string {
	switch symbol {
	case Empty:
		return "Empty"
	case Cross:
		return "Cross"
	case Circle:
		return "Circle"
	default:
		return fmt.Sprintf("Symbol(%d)", int(symbol))
	}
}

func (symbol Symbol) serialize() string {
	switch symbol {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return "."
	}
}

func deserializeSymbol(c rune) (Symbol, bool) {
	switch c {
	case 'X', 'x':
		return Cross, true
	case 'O', 'o':
		return Circle, true
	case '.':
		return Empty, true
	default:
		return Empty, false
	}
}

// Move addresses a cell by row and column, both zero-based.
type Move struct {
	Row, Col uint
}

func (move Move) String() string {
	return fmt.Sprintf("(%d, %d)", move.Row, move.Col)
}

func (move Move) inBounds() bool {
	return move.Row < size && move.Col < size
}
