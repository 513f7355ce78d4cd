package app

import (
	"fmt"

	"github.com/blackwell-systems/libcat/internal/repository"
	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type fileStatus struct {
	File     string `json:"file"`
	Entities int    `json:"entities"`
	Bytes    int64  `json:"bytes"`
	Digest   string `json:"digest,omitempty"`
}

type statusOutput struct {
	DataDir       string       `json:"data_dir"`
	Backend       string       `json:"backend"`
	AtomicCommit  bool         `json:"atomic_commit"`
	Files         []fileStatus `json:"files"`
	TotalEntities int          `json:"total_entities"`
	Overdue       int          `json:"overdue_loans"`
}

func newStatusCmd() *cobra.Command {
	var (
		verbose bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the data directory and entity counts",
		Long: `Show where the catalog lives and how many entities each file holds.

Examples:
  libcat status                 Summary per file
  libcat status --verbose       Include a short content digest per file
  libcat status --json          Machine-readable JSON output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := collectStatus(verbose)
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printStatusText(result, verbose)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show a content digest per file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func collectStatus(withDigest bool) statusOutput {
	result := statusOutput{
		DataDir:      repos.Dir(),
		Backend:      cfg.Storage.Backend,
		AtomicCommit: cfg.Storage.AtomicCommit,
		Overdue:      len(repos.Loans().FindAllOverdue(today())),
	}

	counts := []struct {
		name string
		n    int
	}{
		{repository.BooksFile, repos.Books().Len()},
		{repository.CategoriesFile, repos.Categories().Len()},
		{repository.LibrariesFile, repos.Libraries().Len()},
		{repository.LoansFile, repos.Loans().Len()},
		{repository.ReviewsFile, repos.Reviews().Len()},
		{repository.UsersFile, repos.Users().Len()},
	}
	for _, c := range counts {
		path := repository.Path(repos.Dir(), c.name)
		fs := fileStatus{File: c.name, Entities: c.n, Bytes: util.FileSize(path)}
		if withDigest {
			if d, err := util.Digest(path); err == nil {
				fs.Digest = d
			} else {
				warn("Could not read %s: %v", c.name, err)
			}
		}
		result.Files = append(result.Files, fs)
		result.TotalEntities += c.n
	}
	return result
}

func printStatusText(result statusOutput, verbose bool) {
	header("Data: %s (%s)", result.DataDir, result.Backend)
	for _, fs := range result.Files {
		line := fmt.Sprintf("  %-16s %5d  %s", fs.File, fs.Entities, color.HiBlackString(util.HumanBytes(max(fs.Bytes, 0))))
		if verbose && fs.Digest != "" {
			line += "  " + color.HiBlackString(fs.Digest)
		}
		fmt.Println(line)
	}
	fmt.Printf("\nTotal: %d entities\n", result.TotalEntities)
	if result.Overdue > 0 {
		fmt.Printf("%s %d overdue loan(s); see 'libcat loans list --overdue'\n", color.YellowString("!"), result.Overdue)
	}
}
