// skyflap is a side-scrolling arcade game played in the terminal.
//
// Usage:
//
//	skyflap play             - Play the game
//	skyflap scores           - Show the run history and high score
//	skyflap serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyflap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "skyflap",
	Short: "Skyflap - Tap to fly, dodge the pipes",
	Long: `Skyflap is a terminal arcade game: keep the flyer airborne and slip
through the gaps in an endless stream of pipes. Every five pipes the
world speeds up.

Available commands:
  play     - Start a game in the current terminal
  scores   - View the run history and high score
  serve    - Start SSH server for remote play

Examples:
  skyflap play
  skyflap play --difficulty hard
  skyflap scores --board
  skyflap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyflap/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
