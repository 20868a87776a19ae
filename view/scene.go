package view

import (
	"time"

	"github.com/they4kman/xox/config"
	"github.com/they4kman/xox/game"
	"github.com/they4kman/xox/render"
)

// Scene draws complete frames: the background draw list, then the board.
type Scene struct {
	Palette config.Palette
	Spacing render.Spacing
	Board   *BoardView
}

func NewScene(conf *config.Config, hint string) (*Scene, error) {
	palette, err := conf.Palette()
	if err != nil {
		return nil, err
	}

	return &Scene{
		Palette: palette,
		Spacing: conf.Grid.Spacing(),
		Board: &BoardView{
			CellSize: conf.Board.CellSize,
			Palette:  palette,
			Hint:     hint,
		},
	}, nil
}

// Draw overwrites surface with the frame at elapsed time since start.
func (scene *Scene) Draw(surface *render.Surface, match *game.Game, elapsed time.Duration) {
	surface.Render(Background(scene.Palette, scene.Spacing, elapsed))
	scene.Board.Draw(surface, match)
}
