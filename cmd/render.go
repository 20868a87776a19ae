package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/xox/director"
	"github.com/they4kman/xox/director/script"
	"github.com/they4kman/xox/render"
	"github.com/they4kman/xox/view"
)

var (
	outPath string
	elapsed time.Duration
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Play the given moves and write one frame as a PNG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}

		moves, err := script.ParseMoves(scriptMoves)
		if err != nil {
			return err
		}

		queue := &director.Queue{}
		moveSource := script.New(moves, 0, env.log)
		moveSource.Init(queue)
		for range moves {
			moveSource.Act()
		}
		moveSource.End()
		queue.DrainInto(env.log, env.game)

		scene, err := view.NewScene(env.config, "")
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if outPath != "-" {
			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("could not create %s: %w", outPath, err)
			}
			defer file.Close()
			out = file
		}

		surface := render.NewSurface(env.config.Window.Width, env.config.Window.Height, &render.PNGSink{W: out})
		scene.Draw(surface, env.game, elapsed)
		if err := surface.Present(); err != nil {
			return err
		}

		env.log.WithFields(logrus.Fields{
			"out":     outPath,
			"outcome": env.game.Outcome().String(),
		}).Info("frame written")
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "frame.png", `PNG file to write ("-" for stdout)`)
	renderCmd.Flags().DurationVar(&elapsed, "elapsed", 0, "Animation time of the rendered frame")

	rootCmd.AddCommand(renderCmd)
}
