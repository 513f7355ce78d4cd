package app

import (
	"fmt"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newLibrariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "libraries",
		Aliases: []string{"library"},
		Short:   "Manage library branches and what they hold",
	}
	cmd.AddCommand(
		newLibrariesAddCmd(),
		newLibrariesListCmd(),
		newLibrariesAttachCmd(),
		newLibrariesRmCmd(),
	)
	return cmd
}

func newLibrariesAddCmd() *cobra.Command {
	var name, address, email string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a library",
		Example: `  libcat libraries add --name Central --address "1 Main St" --email central@example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := entity.NewLibrary(uuid.Nil, name, address, email)
			if err != nil {
				return err
			}
			repos.Libraries().Add(l)
			if err := commit(); err != nil {
				return err
			}
			ok("Library %q added (%s)", l.Name(), l.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Library name")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	return cmd
}

func newLibrariesListCmd() *cobra.Command {
	var (
		address   string
		withLoans bool
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			libs := repos.Libraries().FindAll()
			if address != "" {
				libs = repos.Libraries().FindAllByAddress(address)
			}
			libs = filterIf(libs, withLoans, func(l *entity.Library) bool { return len(l.Loans()) > 0 })

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, nonEmpty(libs))
			}
			if len(libs) == 0 {
				warn("No libraries found")
				return nil
			}

			rows := make([][]string, 0, len(libs))
			for _, l := range libs {
				rows = append(rows, []string{
					l.ID().String(),
					cell(l.Name()),
					cell(l.Address()),
					cell(l.Email()),
					fmt.Sprintf("%d/%d/%d", len(l.Books()), len(l.Users()), len(l.Loans())),
				})
			}
			renderTable(out, []string{"ID", "Name", "Address", "Email", "Books/Users/Loans"}, rows)
			footer(out, len(libs), "library", "libraries")
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Only libraries at this exact address")
	cmd.Flags().BoolVar(&withLoans, "with-loans", false, "Only libraries holding at least one loan")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newLibrariesAttachCmd() *cobra.Command {
	var bookIDs, userIDs, loanIDs []string

	cmd := &cobra.Command{
		Use:   "attach <library-id>",
		Short: "Add books, users or loans to a library",
		Long: `Attach existing books, users or loans to a library. Each flag can be
repeated. Entities already attached are skipped.`,
		Example: `  libcat libraries attach <library-id> --book <book-id> --user <user-id>`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := lookup(repos.Libraries().Repository, "library", args[0])
			if err != nil {
				return err
			}
			if len(bookIDs)+len(userIDs)+len(loanIDs) == 0 {
				return fmt.Errorf("nothing to attach; pass --book, --user or --loan")
			}

			attached := 0
			for _, raw := range bookIDs {
				b, err := lookup(repos.Books().Repository, "book", raw)
				if err != nil {
					return err
				}
				if !holds(lib.Books(), b) {
					lib.AddBook(b)
					attached++
				}
			}
			for _, raw := range userIDs {
				u, err := lookup(repos.Users().Repository, "user", raw)
				if err != nil {
					return err
				}
				if !holds(lib.Users(), u) {
					lib.AddUser(u)
					attached++
				}
			}
			for _, raw := range loanIDs {
				l, err := lookup(repos.Loans().Repository, "loan", raw)
				if err != nil {
					return err
				}
				if !holds(lib.Loans(), l) {
					lib.AddLoan(l)
					attached++
				}
			}

			if attached == 0 {
				warn("Everything was already attached to %q", lib.Name())
				return nil
			}
			if err := commit(); err != nil {
				return err
			}
			ok("Attached %d item(s) to %q", attached, lib.Name())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&bookIDs, "book", nil, "Book id to attach (repeatable)")
	cmd.Flags().StringArrayVar(&userIDs, "user", nil, "User id to attach (repeatable)")
	cmd.Flags().StringArrayVar(&loanIDs, "loan", nil, "Loan id to attach (repeatable)")
	return cmd
}

// holds reports whether items already contains an entity equal to e.
func holds[E entity.Entity](items []E, e E) bool {
	for _, it := range items {
		if entity.Equal(it, e) {
			return true
		}
	}
	return false
}

func newLibrariesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a library",
		Long:  "Remove a library. The books, users and loans it held are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lookup(repos.Libraries().Repository, "library", args[0])
			if err != nil {
				return err
			}
			repos.Libraries().Remove(l)
			if err := commit(); err != nil {
				return err
			}
			ok("Library %q removed", l.Name())
			return nil
		},
	}
}
