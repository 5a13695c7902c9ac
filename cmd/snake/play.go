package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/games/snake"
	"github.com/vovakirdan/greedy-snake/internal/platform/tui"
	"github.com/vovakirdan/greedy-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  Arrows/WASD   - Change direction (hold for a short boost)
  Q/+ and E/-   - Faster / slower
  P/Space       - Pause
  R             - Restart
  Esc           - Back to menu (the game is kept and can be resumed)
  Ctrl+C        - Quit

Speed presets:
  slow   - Start at 0.75x
  normal - Start at 1x
  fast   - Start at 1.5x

Examples:
  snake play
  snake play --speed slow
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the game until the player quits.
func play() error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := newLogger()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}

	// Use time-based seed if not specified
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	// The run ledger lives in memory only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	session := snake.New(gameCfg, rt)
	session.SetLogger(logger)

	logger.Info("starting",
		"seed", rt.Seed,
		"fps", flagFPS,
		"grid", fmt.Sprintf("%dx%d", gameCfg.Grid.Width, gameCfg.Grid.Height),
		"tier", gameCfg.Timing.StartTier,
	)

	model := tui.NewModel(session, store, rt).WithLogger(logger)
	if err := tui.Run(model); err != nil {
		logger.Error("game exited with error", "error", err)
		return err
	}
	return nil
}
