package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
	"github.com/they4kman/xox/director"
	"github.com/they4kman/xox/director/script"
	"github.com/they4kman/xox/screen"
)

var (
	configPath   string
	positionPath string
	scriptMoves  string
	interval     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "xox",
	Short: "Play tic-tac-toe on a software-rendered pixel surface",
	Long: `xox is a two-player tic-tac-toe game drawn on a software pixel
surface.

Run with no arguments to play with the mouse
	xox

Replay a list of row:col moves, one every interval
	xox --moves 1:1,0:0,0:1 --interval 1s

Render a single frame to a PNG without opening a window
	xox render --out frame.png --moves 1:1,0:0
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}

		var moveSource director.Director
		if scriptMoves != "" {
			moves, err := script.ParseMoves(scriptMoves)
			if err != nil {
				return err
			}
			moveSource = script.New(moves, env.config.Director.Interval, env.log)
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = screen.Run(screen.Options{
				Config:   env.config,
				Log:      env.log,
				Game:     env.game,
				Director: moveSource,
			})
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file; XOX_* environment variables override it")
	flags.StringVarP(&positionPath, "position", "p", "", "YAML board snapshot to start from")
	flags.StringVarP(&scriptMoves, "moves", "m", "", `Moves to play, as row:col pairs separated by commas (e.g. "1:1,0:0")`)
	flags.DurationVarP(&interval, "interval", "i", 0, "Delay between scripted moves (default from config)")
}
