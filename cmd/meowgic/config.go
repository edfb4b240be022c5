package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meowgic/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning a run would use after applying --config and --difficulty.
Save the output to ~/.meowgic/configs/meowgic.yaml to make it the default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDefaults {
			_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("meowgic"))
			return err
		}
		cfg, err := loadTuning()
		if err != nil {
			return err
		}
		data, err := config.MarshalMeowgic(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}
