package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rps/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Rock, paper, scissors in the terminal",
	Long:  "rps races you against the computer to a target score, one round of rock, paper, scissors at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to HCL config file (overrides RPS_CONFIG env var)")
	flags.String("log-file", "", "Append diagnostic logs to this file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Int("target", 0, "Score that wins a match")
	flags.Int64("seed", 0, "Seed for the computer's moves (0 picks one from the clock)")

	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file named by --config (highest priority),
// then RPS_CONFIG, then the default XDG path, and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		target, _ := flags.GetInt("target")
		cfg.SetTarget(target)
	}
	if flags.Changed("seed") {
		cfg.Match.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
