package notify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// notifierBinary is the external CLI used for delivery.
const notifierBinary = "clawdbot"

// sendTimeout bounds a single delivery attempt.
const sendTimeout = 30 * time.Second

// Client delivers notifications by shelling out to the clawdbot CLI.
type Client struct {
	channel string
	target  string
	timeout time.Duration
}

// NewClient creates a notification client for the given channel and target.
// The clawdbot binary must be available in PATH.
func NewClient(channel, target string) (*Client, error) {
	if target == "" {
		return nil, fmt.Errorf("target cannot be empty")
	}
	if channel == "" {
		return nil, fmt.Errorf("channel cannot be empty")
	}

	if _, err := exec.LookPath(notifierBinary); err != nil {
		return nil, &NotifyError{
			Op:     "initialize",
			Target: target,
			Err:    fmt.Errorf("%s not found in PATH", notifierBinary),
		}
	}

	return &Client{
		channel: channel,
		target:  target,
		timeout: sendTimeout,
	}, nil
}

// Target returns the recipient this client delivers to.
func (c *Client) Target() string {
	return c.target
}

// Send delivers one message. The subprocess is bounded by the client
// timeout; callers decide whether a failure is fatal.
func (c *Client) Send(ctx context.Context, message string) error {
	if message == "" {
		return &NotifyError{
			Op:     "send",
			Target: c.target,
			Err:    fmt.Errorf("message cannot be empty"),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Build command: clawdbot message send --channel CH --target T --message M
	args := []string{"message", "send", "--channel", c.channel, "--target", c.target, "--message", message}
	cmd := exec.CommandContext(ctx, notifierBinary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &NotifyError{
			Op:     "send",
			Target: c.target,
			Err:    fmt.Errorf("failed to send message: %w (stderr: %s)", err, stderr.String()),
		}
	}
	return nil
}
