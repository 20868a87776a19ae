package game

type Symbol int
type BoardState int

const (
	Empty Symbol = iota
	Cross
	Circle
)

const (
	Ongoing BoardState = iota
	Won
	Draw
)

// Side length of the board, in cells
const size = 3

// lines lists every winning line in the order they are checked: rows,
// columns, the main diagonal, then the anti-diagonal.
var lines = [][size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}
