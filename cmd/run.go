package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rps/internal/app"
	"github.com/abhisek/rps/internal/clipboard"
	"github.com/abhisek/rps/internal/logging"
	"github.com/abhisek/rps/internal/store"
)

// runApp loads config, opens the log and the match archive, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	// The archive lives only as long as the process.
	st, err := store.Open(store.InMemoryDSN())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger.Info("starting", "version", version, "target", cfg.Match.Target, "seed", cfg.Match.Seed)

	return app.Run(app.Options{
		Config:    cfg,
		Repo:      st.MatchRepo(),
		Logger:    logger,
		Clipboard: clipboard.System{},
		Source:    app.SourceFor(cfg.Match.Seed),
		Splash:    true,
	})
}
