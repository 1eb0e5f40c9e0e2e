package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Zoom Phone call logs",
	}

	cmd.AddCommand(newPhoneCallsCmd())

	return cmd
}

func newPhoneCallsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "calls",
		Short: "List call logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			calls, err := client.ListCallLogs(cmd.Context(), cfg.UserID(), from, to)
			if err != nil {
				return err
			}
			for _, c := range calls {
				direction := c.Direction
				if direction == "" {
					direction = "?"
				}
				ts := c.DateTime
				if ts == "" {
					ts = "?"
				}
				fmt.Printf("  [%s] %s %s (%ds)\n", ts, direction, c.Number(), c.Duration)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")

	return cmd
}
