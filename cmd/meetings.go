package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/zoom"
)

func newMeetingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Manage meetings",
	}

	cmd.AddCommand(newMeetingsListCmd())
	cmd.AddCommand(newMeetingsLiveCmd())
	cmd.AddCommand(newMeetingsGetCmd())
	cmd.AddCommand(newMeetingsCreateCmd())
	cmd.AddCommand(newMeetingsUpdateCmd())
	cmd.AddCommand(newMeetingsDeleteCmd())
	cmd.AddCommand(newMeetingsRTMSCmd("rtms-start", zoom.RTMSActionStart))
	cmd.AddCommand(newMeetingsRTMSCmd("rtms-stop", zoom.RTMSActionStop))

	return cmd
}

func newMeetingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List upcoming meetings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			meetings, err := client.ListMeetings(cmd.Context(), cfg.UserID(), zoom.MeetingTypeUpcoming)
			if err != nil {
				return err
			}
			printMeetings(meetings, "No upcoming meetings.")
			return nil
		},
	}
}

func newMeetingsLiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "List meetings currently in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			meetings, err := client.ListMeetings(cmd.Context(), cfg.UserID(), zoom.MeetingTypeLive)
			if err != nil {
				return err
			}
			printMeetings(meetings, "No live meetings.")
			return nil
		},
	}
}

func printMeetings(meetings []zoom.Meeting, empty string) {
	if len(meetings) == 0 {
		fmt.Println(empty)
		return
	}
	for _, m := range meetings {
		start := m.StartTime
		if start == "" {
			start = "TBD"
		}
		fmt.Printf("  [%d] %s\n", m.ID, orUntitled(m.Topic))
		fmt.Printf("    Start: %s | Duration: %dmin\n", start, m.Duration)
		if m.JoinURL != "" {
			fmt.Printf("    Join: %s\n", m.JoinURL)
		}
		fmt.Println()
	}
}

func newMeetingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <meeting_id>",
		Short: "Get meeting details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			data, err := client.GetMeeting(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
}

func newMeetingsCreateCmd() *cobra.Command {
	var (
		topic    string
		start    string
		duration int
		agenda   string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a new meeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			req := zoom.CreateMeetingRequest{
				Topic:     topic,
				Type:      2, // scheduled
				StartTime: start,
				Duration:  duration,
				Timezone:  cfg.Timezone,
				Agenda:    agenda,
				Password:  password,
			}
			m, err := client.CreateMeeting(cmd.Context(), cfg.UserID(), req)
			if err != nil {
				return err
			}
			fmt.Println("Meeting created!")
			fmt.Printf("  ID: %d\n", m.ID)
			fmt.Printf("  Topic: %s\n", m.Topic)
			fmt.Printf("  Start: %s\n", m.StartTime)
			fmt.Printf("  Join URL: %s\n", m.JoinURL)
			password := m.Password
			if password == "" {
				password = "N/A"
			}
			fmt.Printf("  Password: %s\n", password)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Meeting topic (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time as ISO datetime (required)")
	cmd.Flags().IntVar(&duration, "duration", 30, "Duration in minutes")
	cmd.Flags().StringVar(&agenda, "agenda", "", "Meeting agenda")
	cmd.Flags().StringVar(&password, "password", "", "Meeting password")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newMeetingsUpdateCmd() *cobra.Command {
	var (
		topic    string
		start    string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "update <meeting_id>",
		Short: "Update a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := zoom.UpdateMeetingRequest{
				Topic:     topic,
				StartTime: start,
				Duration:  duration,
			}
			if req.IsEmpty() {
				fmt.Println("Nothing to update.")
				return nil
			}
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			if err := client.UpdateMeeting(cmd.Context(), args[0], req); err != nil {
				return err
			}
			fmt.Printf("Meeting %s updated.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "New meeting topic")
	cmd.Flags().StringVar(&start, "start", "", "New start time as ISO datetime")
	cmd.Flags().IntVar(&duration, "duration", 0, "New duration in minutes")

	return cmd
}

func newMeetingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <meeting_id>",
		Short: "Delete a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			if err := client.DeleteMeeting(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Meeting %s deleted.\n", args[0])
			return nil
		},
	}
}

func newMeetingsRTMSCmd(use, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <meeting_id>",
		Short: fmt.Sprintf("%s realtime media streams for a live meeting", action),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			if cfg.RTMSClientID == "" {
				return fmt.Errorf("ZOOM_RTMS_CLIENT_ID must be set")
			}
			if err := client.SetRTMSStatus(cmd.Context(), args[0], action, cfg.RTMSClientID); err != nil {
				return err
			}
			fmt.Printf("RTMS %s requested for meeting %s.\n", action, args[0])
			return nil
		},
	}
}

func orUntitled(topic string) string {
	if topic == "" {
		return "Untitled"
	}
	return topic
}
