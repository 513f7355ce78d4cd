package app

import (
	"strings"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reviews",
		Aliases: []string{"review"},
		Short:   "Add, list and remove book reviews",
	}
	cmd.AddCommand(
		newReviewsAddCmd(),
		newReviewsListCmd(),
		newReviewsRmCmd(),
	)
	return cmd
}

func newReviewsAddCmd() *cobra.Command {
	var (
		bookID string
		userID string
		rating int
		text   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Review a book",
		Long: `Record a review and attach it to the reviewed book.

Ratings run from 1 to 5.`,
		Example: `  libcat reviews add --book <book-id> --user <user-id> --rating 5 --text "Loved it"`,
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

			r, err := entity.NewReview(uuid.Nil, text, rating, u.ID(), b.ID())
			if err != nil {
				return err
			}
			repos.Reviews().Add(r)
			b.AddReview(r)
			if err := commit(); err != nil {
				return err
			}
			ok("Review of %q by %s added (%s)", b.Title(), u.Name(), r.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&bookID, "book", "", "Book id")
	cmd.Flags().StringVar(&userID, "user", "", "Reviewer's user id")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "Review text")
	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var (
		bookID  string
		userID  string
		rating  int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := optionalID("book", bookID)
			if err != nil {
				return err
			}
			user, err := optionalID("user", userID)
			if err != nil {
				return err
			}

			reviews := repos.Reviews().FindAll()
			reviews = filterIf(reviews, book != uuid.Nil, func(r *entity.Review) bool { return r.BookID() == book })
			reviews = filterIf(reviews, user != uuid.Nil, func(r *entity.Review) bool { return r.ReviewerID() == user })
			reviews = filterIf(reviews, rating != 0, func(r *entity.Review) bool { return r.Rating() == rating })

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, nonEmpty(reviews))
			}
			if len(reviews) == 0 {
				warn("No reviews found")
				return nil
			}

			rows := make([][]string, 0, len(reviews))
			for _, r := range reviews {
				rows = append(rows, []string{
					r.ID().String(),
					cell(bookTitle(r.BookID())),
					cell(userName(r.ReviewerID())),
					strings.Repeat("★", r.Rating()),
					cell(r.Text()),
				})
			}
			renderTable(out, []string{"ID", "Book", "Reviewer", "Rating", "Text"}, rows)
			footer(out, len(reviews), "review", "reviews")
			return nil
		},
	}

	cmd.Flags().StringVar(&bookID, "book", "", "Only reviews of this book id")
	cmd.Flags().StringVar(&userID, "user", "", "Only reviews by this user id")
	cmd.Flags().IntVar(&rating, "rating", 0, "Only reviews with this rating")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newReviewsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a review",
		Long:  "Remove a review and detach it from its book.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookup(repos.Reviews().Repository, "review", args[0])
			if err != nil {
				return err
			}
			repos.Reviews().Remove(r)
			if b, found := repos.Books().FindByID(r.BookID()); found {
				kept := filterIf(b.Reviews(), true, func(v *entity.Review) bool { return v.ID() != r.ID() })
				b.SetReviews(kept)
			}
			if err := commit(); err != nil {
				return err
			}
			ok("Review %s removed", r.ID())
			return nil
		},
	}
}

// bookTitle resolves an id reference for display.
func bookTitle(id uuid.UUID) string {
	if b, found := repos.Books().FindByID(id); found {
		return b.Title()
	}
	return id.String()
}

func userName(id uuid.UUID) string {
	if u, found := repos.Users().FindByID(id); found {
		return u.Name()
	}
	return id.String()
}
