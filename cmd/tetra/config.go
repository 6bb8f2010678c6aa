package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tetra-arcade/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print a game config",
	Long: `Print the embedded default config, or with --effective the config
that would be used after the search order and --difficulty are applied.

Search order:
  --config path -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded

Examples:
  tetra config > ~/.arcade/configs/tetris.yaml
  tetra config --effective --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved config instead of the default")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}
	out := cmd.OutOrStdout()

	if !flagConfigEffective {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			return fmt.Errorf("no default config for %q", gameID)
		}
		_, err := out.Write(data)
		return err
	}

	cfg, src, err := config.LoadTetrisSource(flagConfig)
	if err != nil {
		return err
	}
	preset, err := parseDifficultyFlag()
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	if flagTick > 0 {
		cfg.Timing.Tick = flagTick
	}

	fmt.Fprintf(out, "# source: %s\n", src)
	if preset != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", preset)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
