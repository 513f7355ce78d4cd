package app

import (
	"strings"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/blackwell-systems/libcat/internal/repository"
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion scripts",
		Long: `Generate autocompletion scripts for your shell. Entity ids complete
with their title or name shown alongside.

Examples:
  # Bash (add to ~/.bashrc)
  source <(libcat completion bash)

  # Zsh (add to ~/.zshrc)
  source <(libcat completion zsh)

  # Fish
  libcat completion fish > ~/.config/fish/completions/libcat.fish

  # PowerShell
  libcat completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return cmd.Help()
			}
		},
	}

	return cmd
}

type completer func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

// idCompleter offers the ids held by the repository pick returns, each
// described by label. The repository is resolved lazily because completion
// runs without the root pre-run hook.
func idCompleter[E entity.Entity](pick func() *repository.Repository[E], label func(E) string) completer {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if err := ensureRepositories(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, e := range pick().FindAll() {
			id := e.ID().String()
			if strings.HasPrefix(id, toComplete) {
				out = append(out, id+"\t"+label(e))
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// firstArg restricts c to the first positional argument.
func firstArg(c completer) completer {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return c(cmd, args, toComplete)
	}
}

var (
	completeBooks = idCompleter(func() *repository.Repository[*entity.Book] { return repos.Books().Repository },
		(*entity.Book).Title)
	completeCategories = idCompleter(func() *repository.Repository[*entity.Category] { return repos.Categories().Repository },
		(*entity.Category).Name)
	completeLibraries = idCompleter(func() *repository.Repository[*entity.Library] { return repos.Libraries().Repository },
		(*entity.Library).Name)
	completeLoans = idCompleter(func() *repository.Repository[*entity.Loan] { return repos.Loans().Repository },
		func(l *entity.Loan) string { return "due " + l.DueDate().String() })
	completeReviews = idCompleter(func() *repository.Repository[*entity.Review] { return repos.Reviews().Repository },
		(*entity.Review).Text)
	completeUsers = idCompleter(func() *repository.Repository[*entity.User] { return repos.Users().Repository },
		(*entity.User).Name)
)

// registerCompletions attaches id completion to positional arguments and
// id-valued flags across the command tree.
func registerCompletions(root *cobra.Command) {
	args := map[string]completer{
		"categories rm":    completeCategories,
		"users rm":         completeUsers,
		"books edit":       completeBooks,
		"books rm":         completeBooks,
		"reviews rm":       completeReviews,
		"loans rm":         completeLoans,
		"libraries attach": completeLibraries,
		"libraries rm":     completeLibraries,
	}
	for path, c := range args {
		if cmd, _, err := root.Find(strings.Fields(path)); err == nil {
			cmd.ValidArgsFunction = firstArg(c)
		}
	}

	flags := []struct {
		path, flag string
		c          completer
	}{
		{"books add", "category", completeCategories},
		{"books list", "category", completeCategories},
		{"books edit", "category", completeCategories},
		{"reviews add", "book", completeBooks},
		{"reviews add", "user", completeUsers},
		{"reviews list", "book", completeBooks},
		{"reviews list", "user", completeUsers},
		{"loans add", "book", completeBooks},
		{"loans add", "user", completeUsers},
		{"loans list", "book", completeBooks},
		{"loans list", "borrower", completeUsers},
		{"libraries attach", "book", completeBooks},
		{"libraries attach", "user", completeUsers},
		{"libraries attach", "loan", completeLoans},
	}
	for _, f := range flags {
		if cmd, _, err := root.Find(strings.Fields(f.path)); err == nil {
			_ = cmd.RegisterFlagCompletionFunc(f.flag, f.c)
		}
	}
}
