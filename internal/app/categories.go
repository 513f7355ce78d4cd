package app

import (
	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Add, list and remove book categories",
	}
	cmd.AddCommand(
		newCategoriesAddCmd(),
		newCategoriesListCmd(),
		newCategoriesRmCmd(),
	)
	return cmd
}

func newCategoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := entity.NewCategory(uuid.Nil, args[0])
			if err != nil {
				return err
			}
			repos.Categories().Add(c)
			if err := commit(); err != nil {
				return err
			}
			ok("Category %q added (%s)", c.Name(), c.ID())
			return nil
		},
	}
}

func newCategoriesListCmd() *cobra.Command {
	var (
		name    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := repos.Categories().FindAll()
			if name != "" {
				cats = repos.Categories().FindAllByName(name)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, nonEmpty(cats))
			}
			if len(cats) == 0 {
				warn("No categories found")
				return nil
			}

			rows := make([][]string, 0, len(cats))
			for _, c := range cats {
				books := len(repos.Books().FindAllByCategory(c.ID()))
				rows = append(rows, []string{c.ID().String(), cell(c.Name()), itoa(books)})
			}
			renderTable(out, []string{"ID", "Name", "Books"}, rows)
			footer(out, len(cats), "category", "categories")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Only categories with this exact name")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newCategoriesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category",
		Long: `Remove a category by id.

Books already filed under the category keep their own copy of it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(repos.Categories().Repository, "category", args[0])
			if err != nil {
				return err
			}
			repos.Categories().Remove(c)
			if err := commit(); err != nil {
				return err
			}
			ok("Category %q removed", c.Name())
			return nil
		},
	}
}
