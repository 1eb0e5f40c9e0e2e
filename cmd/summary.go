package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "AI companion meeting summaries",
	}

	cmd.AddCommand(newSummaryListCmd())
	cmd.AddCommand(newSummaryGetCmd())
	cmd.AddCommand(newSummaryDownloadCmd())

	return cmd
}

func newSummaryListCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available meeting summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			summaries, err := client.ListSummaries(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No summaries found.")
				return nil
			}
			for _, s := range summaries {
				fmt.Printf("  [%d] %s (%s)\n", s.MeetingID, orUntitled(s.MeetingTopic), s.StartTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newSummaryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <meeting_id>",
		Short: "Show the meeting summary as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			summary, err := client.GetMeetingSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(summary.Markdown())
			return nil
		},
	}
}

func newSummaryDownloadCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download <meeting_id>",
		Short: "Write the meeting summary as a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			result, err := client.DownloadSummary(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}
			fmt.Printf("  %s (%d bytes)\n", result.Path, result.Size)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "summaries", "Output directory")

	return cmd
}
