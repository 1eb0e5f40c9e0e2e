package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Team Chat channels, messages, and contacts",
	}

	cmd.AddCommand(newChatChannelsCmd())
	cmd.AddCommand(newChatMessagesCmd())
	cmd.AddCommand(newChatSendCmd())
	cmd.AddCommand(newChatDMCmd())
	cmd.AddCommand(newChatContactsCmd())

	return cmd
}

func newChatChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List chat channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			channels, err := client.ListChannels(cmd.Context(), cfg.UserID())
			if err != nil {
				return err
			}
			for _, ch := range channels {
				fmt.Printf("  [%s] %s (type=%d)\n", ch.ID, ch.Name, ch.Type)
			}
			return nil
		},
	}
}

func newChatMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "messages <channel_id>",
		Short: "List messages in a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			messages, err := client.ListMessages(cmd.Context(), cfg.UserID(), args[0])
			if err != nil {
				return err
			}
			for _, msg := range messages {
				sender := msg.Sender
				if sender == "" {
					sender = "?"
				}
				ts := msg.DateTime
				if ts == "" {
					ts = "?"
				}
				fmt.Printf("  [%s] %s: %s\n", ts, sender, msg.Message)
			}
			return nil
		},
	}
}

func newChatSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <channel_id> <message>",
		Short: "Send a message to a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			if err := client.SendChannelMessage(cmd.Context(), cfg.UserID(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Message sent to channel %s.\n", args[0])
			return nil
		},
	}
}

func newChatDMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dm <email> <message>",
		Short: "Send a direct message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newZoomClient()
			if err != nil {
				return err
			}
			if err := client.SendDirectMessage(cmd.Context(), cfg.UserID(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("DM sent to %s.\n", args[0])
			return nil
		},
	}
}

func newChatContactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "List chat contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newZoomClient()
			if err != nil {
				return err
			}
			contacts, err := client.ListContacts(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range contacts {
				email := c.Email
				if email == "" {
					email = "?"
				}
				fmt.Printf("  %s - %s %s\n", email, c.FirstName, c.LastName)
			}
			return nil
		},
	}
}
