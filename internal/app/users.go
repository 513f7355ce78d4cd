package app

import (
	"fmt"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Add, list and remove library users",
	}
	cmd.AddCommand(
		newUsersAddCmd(),
		newUsersListCmd(),
		newUsersRmCmd(),
	)
	return cmd
}

func newUsersAddCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Register a user",
		Example: `  libcat users add --email ada@example.com --name "Ada Lovelace"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, taken := repos.Users().FindByEmail(email); taken && email != "" {
				warn("Another user is already registered with %s", email)
			}
			u, err := entity.NewUser(uuid.Nil, email, name)
			if err != nil {
				return err
			}
			repos.Users().Add(u)
			if err := commit(); err != nil {
				return err
			}
			ok("User %q added (%s)", u.Name(), u.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var (
		email   string
		name    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []*entity.User
			switch {
			case email != "":
				if u, found := repos.Users().FindByEmail(email); found {
					users = append(users, u)
				}
			case name != "":
				users = repos.Users().FindAllByName(name)
			default:
				users = repos.Users().FindAll()
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, nonEmpty(users))
			}
			if len(users) == 0 {
				warn("No users found")
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				loans := len(repos.Loans().FindAllByBorrower(u.ID()))
				rows = append(rows, []string{u.ID().String(), cell(u.Name()), cell(u.Email()), itoa(loans)})
			}
			renderTable(out, []string{"ID", "Name", "Email", "Loans"}, rows)
			footer(out, len(users), "user", "users")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Find the user with this email")
	cmd.Flags().StringVar(&name, "name", "", "Only users with this exact name")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newUsersRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := lookup(repos.Users().Repository, "user", args[0])
			if err != nil {
				return err
			}
			if n := len(repos.Loans().FindAllByBorrower(u.ID())); n > 0 && !force {
				return fmt.Errorf("user %q still has %d loan(s); use --force to remove anyway", u.Name(), n)
			}
			repos.Users().Remove(u)
			if err := commit(); err != nil {
				return err
			}
			ok("User %q removed", u.Name())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the user has loans")
	return cmd
}
