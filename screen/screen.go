package screen

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/xox/config"
	"github.com/they4kman/xox/director"
	"github.com/they4kman/xox/game"
	"github.com/they4kman/xox/render"
	"github.com/they4kman/xox/view"
)

type Options struct {
	Config *config.Config
	Log    logrus.FieldLogger

	// Match to start from; a new one if nil
	Game *game.Game

	// Optional source of moves besides the mouse
	Director director.Director
}

// Run opens the window and plays until it is closed or Escape is pressed.
// It must be called from pixelgl.Run. A presentation failure ends the loop
// and is returned.
func Run(options Options) error {
	conf := options.Config
	log := options.Log.WithField("component", "screen")

	scene, err := view.NewScene(conf, "Enter for a new game")
	if err != nil {
		return err
	}

	scale := conf.Window.Scale
	cfg := pixelgl.WindowConfig{
		Title: conf.Window.Title,
		Bounds: pixel.R(
			0, 0,
			float64(conf.Window.Width*scale),
			float64(conf.Window.Height*scale),
		),
		Resizable: conf.Window.Resizable,
		VSync:     true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	defer win.Destroy()

	sink := &windowSink{win: win, scale: float64(scale)}
	surface := render.NewSurface(0, 0, sink)

	match := options.Game
	if match == nil {
		match = game.New()
	}

	queue := &director.Queue{}
	if options.Director != nil {
		options.Director.Init(queue)
		options.Director.ActContinuously()
		defer options.Director.End()
	}

	var (
		startTime = time.Now()
		frames    = 0
		second    = time.Tick(time.Second)
	)

	for !win.Closed() {
		if win.JustPressed(pixelgl.KeyEscape) {
			log.Info("Escape pressed, closing")
			return nil
		}

		width, height := sink.logicalSize()
		if width != surface.Width() || height != surface.Height() {
			if err := surface.Resize(width, height); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("surface resized")
		}

		if match.Outcome().IsOver() {
			// Start a new match with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				match.Reset()
				queue.Clear()
				log.Info("new match")
			}
		} else if win.JustPressed(pixelgl.MouseButtonLeft) && win.MouseInsideWindow() {
			x, y := sink.toSurface(win.MousePosition())
			if move, ok := scene.Board.CellAt(surface, x, y); ok {
				queue.Submit(move)
			}
		}

		queue.DrainInto(log, match)

		scene.Draw(surface, match, time.Since(startTime))
		if err := surface.Present(); err != nil {
			return err
		}

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}
	}

	return nil
}
