package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/libcat/internal/config"
	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/blackwell-systems/libcat/internal/logging"
	"github.com/blackwell-systems/libcat/internal/repository"
	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg   *config.Config
	log   = zap.NewNop()
	repos *repository.Factory

	flagNoColor bool
	flagConfig  string
	flagDataDir string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "libcat",
		Short: "Manage a library catalog stored as JSON files",
		Long: `libcat keeps books, categories, users, reviews, loans and libraries
in one JSON file per type inside a data directory.

Every command loads the files, applies its change in memory, and writes
all files back before exiting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/libcat/config.yml)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (overrides storage.data_dir)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if err := loadConfig(); err != nil {
			return err
		}
		log = logging.New(cfg.Log.Level, cfg.Log.Format)

		switch cmd.Name() {
		case "version", "completion", "init":
			return nil
		}
		return openRepositories()
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	}

	root.AddCommand(
		newInitCmd(),
		newCategoriesCmd(),
		newUsersCmd(),
		newBooksCmd(),
		newReviewsCmd(),
		newLoansCmd(),
		newLibrariesCmd(),
		newStatusCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
	registerCompletions(root)
	return root
}

func loadConfig() error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.Storage.DataDir = config.ExpandHome(flagDataDir)
	}
	return nil
}

// ensureRepositories opens the data directory for code paths that skip the
// pre-run hook, such as shell completion.
func ensureRepositories() error {
	if repos != nil {
		return nil
	}
	if err := loadConfig(); err != nil {
		return err
	}
	return openRepositories()
}

func openRepositories() error {
	backend, err := repository.ParseBackend(cfg.Storage.Backend)
	if err != nil {
		return err
	}
	opts := []repository.Option{repository.WithLogger(log)}
	if cfg.Storage.AtomicCommit {
		opts = append(opts, repository.WithAtomicWrites())
	}
	repos, err = repository.New(backend, cfg.Storage.DataDir, opts...)
	if err != nil {
		return fmt.Errorf("opening data in %s: %w", cfg.Storage.DataDir, err)
	}
	return nil
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError lists validation messages one per line.
func printError(err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), "invalid", ve.Kind)
		for _, m := range ve.Messages {
			fmt.Fprintln(os.Stderr, "  -", m)
		}
		return
	}
	fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
}

// commit writes every repository back to disk.
func commit() error {
	if err := repos.Commit(); err != nil {
		return fmt.Errorf("saving changes: %w", err)
	}
	return nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
