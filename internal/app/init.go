package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/libcat/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		backend  string
		atomic   bool
		logLevel string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file and create an empty data directory",
		Long: `Write a libcat config file and create the data directory with one empty
JSON file per entity type.

The data directory comes from --data-dir, or the current config if unset.
An existing config file is only replaced with --force.`,
		Example: `  libcat init --data-dir ~/catalog
  libcat init --data-dir ./data --atomic --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(flagConfig)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			flags := cmd.Flags()
			if flags.Changed("backend") {
				cfg.Storage.Backend = backend
			}
			if flags.Changed("atomic") {
				cfg.Storage.AtomicCommit = atomic
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := openRepositories(); err != nil {
				return err
			}
			if err := commit(); err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			ok("Config written to %s", path)
			ok("Data directory ready at %s", repos.Dir())
			fmt.Printf("\nNext: %s\n", color.CyanString("libcat categories add Fiction"))
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "json", "Storage backend (only json is implemented)")
	cmd.Flags().BoolVar(&atomic, "atomic", false, "Write files through a temp file and rename")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
