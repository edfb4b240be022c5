// meowgic runs Meowgic Catch, a cat-and-fish arcade simulation, in the terminal.
//
// Usage:
//
//	meowgic play            - Play in the terminal
//	meowgic sim             - Run the simulation headless from a script
//	meowgic config          - Print the effective tuning as YAML
//	meowgic list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom tuning YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meowgic/internal/config"
	"github.com/vovakirdan/meowgic/internal/games/meowgic"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagCheat      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meowgic",
	Short: "Meowgic Catch - catch fish, dodge dogs",
	Long: `Meowgic Catch is an arcade simulation: a cat roams a square field
catching fish while a pack of dogs chases it and steals its catch.

Available commands:
  play     - Play in the terminal
  sim      - Run headless from an input script
  config   - Print the effective tuning as YAML
  list     - Show registered games

Examples:
  meowgic play
  meowgic play --difficulty hard --seed 42
  meowgic sim --frames 2400 --script run.txt
  meowgic config --difficulty easy > easy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagCheat, "cheat", false, "Start with the magnet bubble on")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadTuning resolves the tuning from --config and --difficulty and hands it
// to the game package so registry.Create picks it up.
func loadTuning() (config.MeowgicConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.MeowgicConfig{}, err
	}
	cfg, err := config.LoadMeowgic(flagConfig)
	if err != nil {
		return config.MeowgicConfig{}, err
	}
	config.ApplyMeowgicPreset(&cfg, preset)

	meowgic.Configure(cfg)
	meowgic.SetStartCheat(flagCheat)
	return cfg, nil
}
