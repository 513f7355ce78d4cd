package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "Add, list, edit and remove books",
	}
	cmd.AddCommand(
		newBooksAddCmd(),
		newBooksListCmd(),
		newBooksEditCmd(),
		newBooksRmCmd(),
	)
	return cmd
}

func newBooksAddCmd() *cobra.Command {
	var (
		title    string
		author   string
		category string
		year     int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Add a book to the catalog.

--category takes a category id or its exact name.`,
		Example: `  libcat books add --title "Dune" --author "Frank Herbert" --category Fiction --year 1965`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat *entity.Category
			if category != "" {
				c, err := lookupCategory(category)
				if err != nil {
					return err
				}
				cat = c
			}

			b, err := entity.NewBook(uuid.Nil, title, author, cat, year)
			if err != nil {
				return err
			}
			repos.Books().Add(b)
			if err := commit(); err != nil {
				return err
			}
			ok("Book %q added (%s)", b.Title(), b.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&category, "category", "", "Category id or name")
	cmd.Flags().IntVar(&year, "year", 0, "Year published")
	return cmd
}

func newBooksListCmd() *cobra.Command {
	var (
		category  string
		author    string
		search    string
		available bool
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books",
		Long: `List books, optionally narrowed by filters. Filters combine.

--search matches title or author, ignoring case.`,
		Example: `  libcat books list --category Fiction
  libcat books list --search tolkien --available
  libcat books list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := repos.Books().FindAll()
			if search != "" {
				books = repos.Books().Search(search)
			}
			if category != "" {
				c, err := lookupCategory(category)
				if err != nil {
					return err
				}
				books = filterIf(books, true, func(b *entity.Book) bool {
					return b.Category() != nil && b.Category().ID() == c.ID()
				})
			}
			books = filterIf(books, author != "", func(b *entity.Book) bool { return b.Author() == author })
			books = filterIf(books, available, (*entity.Book).Available)

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, nonEmpty(books))
			}
			if len(books) == 0 {
				warn("No books found")
				return nil
			}

			rows := make([][]string, 0, len(books))
			for _, b := range books {
				catName := "-"
				if b.Category() != nil {
					catName = b.Category().Name()
				}
				rows = append(rows, []string{
					b.ID().String(),
					cell(b.Title()),
					cell(b.Author()),
					cell(catName),
					itoa(b.YearPublished()),
					ratingSummary(b.Reviews()),
				})
			}
			renderTable(out, []string{"ID", "Title", "Author", "Category", "Year", "Rating"}, rows)
			footer(out, len(books), "book", "books")
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only books in this category (id or name)")
	cmd.Flags().StringVar(&author, "author", "", "Only books by this exact author")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive title/author match")
	cmd.Flags().BoolVar(&available, "available", false, "Only books that can be lent")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// ratingSummary renders the mean rating with the review count.
func ratingSummary(reviews []*entity.Review) string {
	if len(reviews) == 0 {
		return "-"
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating()
	}
	return fmt.Sprintf("%.1f (%d)", float64(sum)/float64(len(reviews)), len(reviews))
}

func newBooksEditCmd() *cobra.Command {
	var (
		title    string
		author   string
		category string
		year     int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a book",
		Long: `Change one or more fields of a book.

Each field is checked on its own. A rejected field is reported and left
unchanged; accepted fields are still saved.`,
		Example: `  libcat books edit 6f1c... --title "Dune Messiah" --year 1969`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookup(repos.Books().Repository, "book", args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var changed []string
			var rejected []error
			apply := func(field string, set func() error) {
				if err := set(); err != nil {
					rejected = append(rejected, err)
					fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("✗"), field+":", strings.Join(entity.Messages(err), " "))
					return
				}
				changed = append(changed, field)
			}

			if flags.Changed("title") {
				apply("title", func() error { return b.SetTitle(title) })
			}
			if flags.Changed("author") {
				apply("author", func() error { return b.SetAuthor(author) })
			}
			if flags.Changed("year") {
				apply("year", func() error { return b.SetYearPublished(year) })
			}
			if flags.Changed("category") {
				c, err := lookupCategory(category)
				if err != nil {
					return err
				}
				apply("category", func() error { return b.SetCategory(c) })
			}

			if len(changed) == 0 && len(rejected) == 0 {
				warn("Nothing to change; pass --title, --author, --year or --category")
				return nil
			}
			if len(changed) > 0 {
				if err := commit(); err != nil {
					return err
				}
				ok("Book %q updated: %s", b.Title(), strings.Join(changed, ", "))
			}
			return errors.Join(rejected...)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&author, "author", "", "New author")
	cmd.Flags().StringVar(&category, "category", "", "New category (id or name)")
	cmd.Flags().IntVar(&year, "year", 0, "New year published")
	return cmd
}

func newBooksRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lookup(repos.Books().Repository, "book", args[0])
			if err != nil {
				return err
			}
			if n := len(repos.Loans().FindAllByBook(b.ID())); n > 0 && !force {
				return fmt.Errorf("book %q is on %d loan(s); use --force to remove anyway", b.Title(), n)
			}
			repos.Books().Remove(b)
			if err := commit(); err != nil {
				return err
			}
			ok("Book %q removed", b.Title())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the book is on loan")
	return cmd
}
