package app

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// defaultLoanDays is the lending period used when --due-date is omitted.
const defaultLoanDays = 14

func newLoansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loans",
		Aliases: []string{"loan"},
		Short:   "Lend books and track due dates",
	}
	cmd.AddCommand(
		newLoansAddCmd(),
		newLoansListCmd(),
		newLoansRmCmd(),
	)
	return cmd
}

// parseDateFlag reads a dd-mm-yyyy flag value, falling back to def when empty.
func parseDateFlag(name, raw string, def entity.Date) (entity.Date, error) {
	if raw == "" {
		return def, nil
	}
	d, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

func today() entity.Date { return entity.DateOf(time.Now()) }

func newLoansAddCmd() *cobra.Command {
	var (
		bookID   string
		userID   string
		loanDate string
		dueDate  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Lend a book to a user",
		Long: `Record a loan. Dates use the dd-mm-yyyy format.

The loan date defaults to today and the due date to two weeks after it.`,
		Example: `  libcat loans add --book <book-id> --user <user-id> --due-date 31-12-2025`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookup(repos.Books().Repository, "book", bookID)
			if err != nil {
				return err
			}
			u, err := lookup(repos.Users().Repository, "user", userID)
			if err != nil {
				return err
			}
			if !b.Available() {
				return fmt.Errorf("book %q is not available for lending", b.Title())
			}

			from, err := parseDateFlag("loan-date", loanDate, today())
			if err != nil {
				return err
			}
			due, err := parseDateFlag("due-date", dueDate, from.AddDays(defaultLoanDays))
			if err != nil {
				return err
			}
			if due.Before(from) {
				warn("Due date %s is before loan date %s", due, from)
			}

			l, err := entity.NewLoan(uuid.Nil, from, due, u.ID(), b)
			if err != nil {
				return err
			}
			repos.Loans().Add(l)
			if err := commit(); err != nil {
				return err
			}
			ok("%q lent to %s until %s (%s)", b.Title(), u.Name(), due, l.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&bookID, "book", "", "Book id")
	cmd.Flags().StringVar(&userID, "user", "", "Borrower's user id")
	cmd.Flags().StringVar(&loanDate, "loan-date", "", "Loan date (dd-mm-yyyy, default today)")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date (dd-mm-yyyy, default loan date + 14 days)")
	return cmd
}

func newLoansListCmd() *cobra.Command {
	var (
		borrower string
		bookID   string
		overdue  bool
		asOf     string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loans",
		Example: `  libcat loans list --overdue
  libcat loans list --borrower <user-id> --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := optionalID("user", borrower)
			if err != nil {
				return err
			}
			book, err := optionalID("book", bookID)
			if err != nil {
				return err
			}
			ref, err := parseDateFlag("as-of", asOf, today())
			if err != nil {
				return err
			}

			loans := repos.Loans().FindAll()
			if overdue {
				loans = repos.Loans().FindAllOverdue(ref)
			}
			loans = filterIf(loans, user != uuid.Nil, func(l *entity.Loan) bool { return l.BorrowerID() == user })
			loans = filterIf(loans, book != uuid.Nil, func(l *entity.Loan) bool {
				return l.BorrowedBook() != nil && l.BorrowedBook().ID() == book
			})

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, nonEmpty(loans))
			}
			if len(loans) == 0 {
				warn("No loans found")
				return nil
			}

			rows := make([][]string, 0, len(loans))
			for _, l := range loans {
				title := "-"
				if l.BorrowedBook() != nil {
					title = l.BorrowedBook().Title()
				}
				due := l.DueDate().String()
				if l.Overdue(ref) {
					due = color.RedString(due)
				}
				rows = append(rows, []string{
					l.ID().String(),
					cell(title),
					cell(userName(l.BorrowerID())),
					l.LoanDate().String(),
					due,
				})
			}
			renderTable(out, []string{"ID", "Book", "Borrower", "Loaned", "Due"}, rows)
			footer(out, len(loans), "loan", "loans")
			return nil
		},
	}

	cmd.Flags().StringVar(&borrower, "borrower", "", "Only loans to this user id")
	cmd.Flags().StringVar(&bookID, "book", "", "Only loans of this book id")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "Only loans past their due date")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Reference date for --overdue (dd-mm-yyyy, default today)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newLoansRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"return"},
		Short:   "Remove a loan (the book was returned)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lookup(repos.Loans().Repository, "loan", args[0])
			if err != nil {
				return err
			}
			repos.Loans().Remove(l)
			if err := commit(); err != nil {
				return err
			}
			ok("Loan %s removed", l.ID())
			return nil
		},
	}
}
