package zoom

import (
	"context"
	"fmt"
	"net/http"
)

// Page sizes for the chat endpoints, matching the provider's sensible
// maximums for interactive use.
const (
	channelPageSize = 50
	messagePageSize = 20
	contactPageSize = 50
)

// ListChannels returns the first page of the user's Team Chat channels.
func (c *Client) ListChannels(ctx context.Context, userID string) ([]Channel, error) {
	var page struct {
		Channels []Channel `json:"channels"`
	}
	if err := c.GetJSON(ctx, fmt.Sprintf("/chat/users/%s/channels", userID), pageQuery(channelPageSize), &page); err != nil {
		return nil, err
	}
	return page.Channels, nil
}

// ListMessages returns the first page of messages in a channel.
func (c *Client) ListMessages(ctx context.Context, userID, channelID string) ([]ChatMessage, error) {
	q := pageQuery(messagePageSize)
	q.Set("to_channel", channelID)

	var page struct {
		Messages []ChatMessage `json:"messages"`
	}
	if err := c.GetJSON(ctx, fmt.Sprintf("/chat/users/%s/messages", userID), q, &page); err != nil {
		return nil, err
	}
	return page.Messages, nil
}

// SendChannelMessage posts a message to a channel.
func (c *Client) SendChannelMessage(ctx context.Context, userID, channelID, message string) error {
	body := map[string]string{
		"message":    message,
		"to_channel": channelID,
	}
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/chat/users/%s/messages", userID), nil, body)
	return err
}

// SendDirectMessage sends a direct message to a contact by email.
func (c *Client) SendDirectMessage(ctx context.Context, userID, email, message string) error {
	body := map[string]string{
		"message":    message,
		"to_contact": email,
	}
	_, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/chat/users/%s/messages", userID), nil, body)
	return err
}

// ListContacts returns the first page of company chat contacts.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	q := pageQuery(contactPageSize)
	q.Set("type", "company")

	var page struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.GetJSON(ctx, "/contacts", q, &page); err != nil {
		return nil, err
	}
	return page.Contacts, nil
}
