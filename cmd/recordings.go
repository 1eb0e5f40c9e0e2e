package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecordingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "Manage cloud recordings",
	}

	cmd.AddCommand(newRecordingsListCmd())
	cmd.AddCommand(newRecordingsGetCmd())
	cmd.AddCommand(newRecordingsDeleteCmd())
	cmd.AddCommand(newRecordingsDownloadCmd("download", "Download all recording files of a meeting", false))
	cmd.AddCommand(newRecordingsDownloadCmd("download-transcript", "Download only the transcript files of a meeting", true))

	return cmd
}

func newRecordingsListCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cloud recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			meetings, err := client.ListRecordings(cmd.Context(), cfg.UserID(), from, to)
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				fmt.Println("No recordings found.")
				return nil
			}
			for _, m := range meetings {
				fmt.Printf("  [%d] %s (%s)\n", m.ID, orUntitled(m.Topic), m.StartTime)
				for _, f := range m.RecordingFiles {
					fmt.Printf("    %s: %s\n", f.RecordingType, f.DownloadURL)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newRecordingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <meeting_id>",
		Short: "Get recording details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			data, err := client.GetRecordings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
}

func newRecordingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <meeting_id>",
		Short: "Delete all recordings of a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			if err := client.DeleteRecordings(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Recordings for meeting %s deleted.\n", args[0])
			return nil
		},
	}
}

func newRecordingsDownloadCmd(use, short string, transcriptOnly bool) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   use + " <meeting_id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			results, err := client.DownloadRecordings(cmd.Context(), args[0], dir, transcriptOnly)
			for _, r := range results {
				fmt.Printf("  %s (%d bytes)\n", r.Path, r.Size)
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("Nothing to download.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "recordings", "Output directory")

	return cmd
}
