package view

import (
	"github.com/they4kman/xox/config"
	"github.com/they4kman/xox/game"
	"github.com/they4kman/xox/render"
)

const boardCells = 3

// BoardView draws a game centred on the surface and maps surface pixels back
// to board cells.
type BoardView struct {
	CellSize int
	Palette  config.Palette

	// Appended to the status line once the match is over
	Hint string
}

func (view *BoardView) side() int {
	return view.CellSize * boardCells
}

// origin is the top-left pixel of the board on a width x height surface.
func (view *BoardView) origin(width, height int) (int, int) {
	return (width - view.side()) / 2, (height - view.side()) / 2
}

// CellAt maps a surface pixel to the board cell under it.
func (view *BoardView) CellAt(surface *render.Surface, x, y int) (game.Move, bool) {
	x0, y0 := view.origin(surface.Width(), surface.Height())
	dx, dy := x-x0, y-y0
	if dx < 0 || dy < 0 || dx >= view.side() || dy >= view.side() {
		return game.Move{}, false
	}
	return game.Move{Row: uint(dy / view.CellSize), Col: uint(dx / view.CellSize)}, true
}

// cellCenter is the pixel at the middle of the cell for move.
func (view *BoardView) cellCenter(surface *render.Surface, move game.Move) (int, int) {
	x0, y0 := view.origin(surface.Width(), surface.Height())
	half := view.CellSize / 2
	return x0 + int(move.Col)*view.CellSize + half, y0 + int(move.Row)*view.CellSize + half
}

func (view *BoardView) Draw(surface *render.Surface, match *game.Game) {
	x0, y0 := view.origin(surface.Width(), surface.Height())
	last := view.side() - 1

	for i := 1; i < boardCells; i++ {
		offset := i * view.CellSize
		surface.DrawLine(x0+offset, y0, x0+offset, y0+last, view.Palette.Board)
		surface.DrawLine(x0, y0+offset, x0+last, y0+offset, view.Palette.Board)
	}

	board := match.Board()
	for row := range board {
		for col, symbol := range board[row] {
			cx, cy := view.cellCenter(surface, game.Move{Row: uint(row), Col: uint(col)})
			switch symbol {
			case game.Cross:
				view.drawCross(surface, cx, cy)
			case game.Circle:
				view.drawCircle(surface, cx, cy)
			}
		}
	}

	outcome := match.Outcome()
	if outcome.State == game.Won {
		sx, sy := view.cellCenter(surface, outcome.Line[0])
		ex, ey := view.cellCenter(surface, outcome.Line[len(outcome.Line)-1])
		surface.DrawLine(sx, sy, ex, ey, view.Palette.Line)
	}

	status := view.Status(match)
	tx := (surface.Width() - render.TextWidth(status)) / 2
	ty := y0 + view.side() + 4
	if ty+render.TextHeight > surface.Height() {
		ty = 2
	}
	render.DrawText(surface, tx, ty, status, view.Palette.Text)
}

// markRadius is half the extent of a mark, leaving a margin inside the cell.
func (view *BoardView) markRadius() int {
	return view.CellSize/2 - view.CellSize/5
}

func (view *BoardView) drawCross(surface *render.Surface, cx, cy int) {
	r := view.markRadius()
	surface.DrawLine(cx-r, cy-r, cx+r, cy+r, view.Palette.Cross)
	surface.DrawLine(cx-r, cy+r, cx+r, cy-r, view.Palette.Cross)
}

// drawCircle approximates the circle with an octagon of line segments.
func (view *BoardView) drawCircle(surface *render.Surface, cx, cy int) {
	r := view.markRadius()
	d := r * 707 / 1000 // r/sqrt(2)
	points := [][2]int{
		{r, 0}, {d, d}, {0, r}, {-d, d},
		{-r, 0}, {-d, -d}, {0, -r}, {d, -d},
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		surface.DrawLine(cx+p[0], cy+p[1], cx+q[0], cy+q[1], view.Palette.Circle)
	}
}

// Status is the line of text shown under the board.
func (view *BoardView) Status(match *game.Game) string {
	outcome := match.Outcome()
	if !outcome.IsOver() {
		return "Next move: " + match.CurrentPlayer().String()
	}

	status := outcome.String()
	if view.Hint != "" {
		status += " - " + view.Hint
	}
	return status
}
