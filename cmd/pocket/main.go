// pocket is a handheld-style arcade console rendered in the terminal.
//
// Usage:
//
//	pocket play              - Boot the console into the menu
//	pocket play snake        - Boot straight into a game
//	pocket scenes            - List available scenes
//	pocket serve             - Start SSH server for remote play
//	pocket scores <scene>    - Show high scores for a scene
//
// Global flags:
//
//	--fps <rate>    - Poll rate of the console loop (default: 120)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Scores database path (default: ~/.pocket-arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/scenes/fish"
	_ "github.com/vovakirdan/pocket-arcade/internal/scenes/flappy"
	_ "github.com/vovakirdan/pocket-arcade/internal/scenes/menu"
	_ "github.com/vovakirdan/pocket-arcade/internal/scenes/snake"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Pocket Arcade - a handheld game console in your terminal",
	Long: `Pocket Arcade emulates a tiny handheld console with a 128x160 color
screen. The console boots into a menu and multiplexes Snake, Flappy,
and Fish onto the screen, driven by single-letter commands.

Available commands:
  play     - Boot the console
  scenes   - Show all registered scenes
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pocket play
  pocket play flappy
  pocket play --listen :7777
  pocket serve --ssh :2222
  pocket scores snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 120, "Console loop poll rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pocket-arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
