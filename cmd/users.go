package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/zoom"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(newUsersMeCmd())
	cmd.AddCommand(newUsersGetCmd())
	cmd.AddCommand(newUsersListCmd())

	return cmd
}

func newUsersMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show my profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			u, err := client.GetUser(cmd.Context(), cfg.UserID())
			if err != nil {
				return err
			}
			printUser(u)
			return nil
		},
	}
}

func printUser(u *zoom.User) {
	fmt.Printf("Name: %s %s\n", u.FirstName, u.LastName)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Type: %d (1=Basic, 2=Licensed, 3=On-Prem)\n", u.Type)
	fmt.Printf("PMI: %d\n", u.PMI)
	fmt.Printf("Timezone: %s\n", u.Timezone)
	fmt.Printf("Status: %s\n", u.Status)
}

func newUsersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user_id>",
		Short: "Get a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			data, err := client.GetUserRaw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users in the account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Printf("  %s - %s %s (type=%d)\n", u.Email, u.FirstName, u.LastName, u.Type)
			}
			return nil
		},
	}
}
