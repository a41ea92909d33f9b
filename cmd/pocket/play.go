package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var (
	flagConfig string
	flagListen string
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Boot the console",
	Long: `Boot the pocket console. Without arguments it starts in the menu;
with a scene ID it jumps straight into that game (back still returns
to the menu).

Controls:
  Arrows/WASD    - Up/Down/Left/Right
  Space/Enter    - Select
  Esc/Backspace  - Back
  Q/Ctrl+C       - Quit

The --listen flag opens a TCP port that accepts the raw command bytes
(U, D, L, R, S, B, N, P) so an external controller can drive the
console, e.g.:

  pocket play --listen :7777
  printf S | nc localhost 7777

Examples:
  pocket play
  pocket play flappy
  pocket play snake --config ./my-tuning.yaml
  pocket play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagListen, "listen", "", "TCP address accepting raw command bytes")
}

func runPlay(cmd *cobra.Command, args []string) {
	startScene := ""
	if len(args) == 1 {
		startScene = args[0]
		if !registry.Exists(startScene) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", startScene)
			fmt.Fprintln(os.Stderr, "Run 'pocket scenes' to see available scenes.")
			os.Exit(1)
		}
	}

	rt := core.DefaultConfig()
	rt.PollRate = flagFPS
	rt.Seed = flagSeed

	// The console needs 128 cells by 80 rows of half-blocks.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < rt.ScreenW || h < rt.ScreenH/2 {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n",
				w, h, rt.ScreenW, rt.ScreenH/2)
			os.Exit(1)
		}
	}

	tun, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without persistence
		store = nil
	}

	runErr := tui.Run(store, rt, tun, startScene, flagListen)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", runErr)
		os.Exit(1)
	}
}
