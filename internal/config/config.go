package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultTimezone      = "Asia/Singapore"
	DefaultNotifyChannel = "whatsapp"
)

// Config holds all runtime configuration for the CLI and the webhook
// receiver. It is populated once at startup and passed to the components
// that need it; nothing reads the environment after Load returns.
type Config struct {
	// Server-to-Server OAuth credentials
	AccountID    string
	ClientID     string
	ClientSecret string

	// UserEmail is the Zoom user the CLI acts as. Empty means "me".
	// Also used by the webhook receiver to suppress self-messages.
	UserEmail string

	// Timezone used when scheduling meetings.
	Timezone string

	// RTMSClientID is the realtime media streams app client ID.
	RTMSClientID string

	// WebhookSecret is the secret token used to answer Zoom's
	// endpoint.url_validation challenge.
	WebhookSecret string

	// Notifier settings for the webhook receiver.
	NotifyTarget  string
	NotifyChannel string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; existing environment variables win.
func Load() *Config {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	return &Config{
		AccountID:     os.Getenv("ZOOM_ACCOUNT_ID"),
		ClientID:      os.Getenv("ZOOM_CLIENT_ID"),
		ClientSecret:  os.Getenv("ZOOM_CLIENT_SECRET"),
		UserEmail:     os.Getenv("ZOOM_USER_EMAIL"),
		Timezone:      envOr("TZ", DefaultTimezone),
		RTMSClientID:  os.Getenv("ZOOM_RTMS_CLIENT_ID"),
		WebhookSecret: os.Getenv("ZOOM_WEBHOOK_SECRET_TOKEN"),
		NotifyTarget:  os.Getenv("ZOOM_NOTIFY_TARGET"),
		NotifyChannel: envOr("ZOOM_NOTIFY_CHANNEL", DefaultNotifyChannel),
	}
}

// UserID returns the user identifier for API paths: the configured email,
// or "me" when none is set.
func (c *Config) UserID() string {
	if c.UserEmail == "" {
		return "me"
	}
	return c.UserEmail
}

// ValidateCredentials checks that the OAuth credentials required for API
// calls are present.
func (c *Config) ValidateCredentials() error {
	if c.AccountID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("ZOOM_ACCOUNT_ID, ZOOM_CLIENT_ID, and ZOOM_CLIENT_SECRET must be set")
	}
	return nil
}

// ValidateWebhook checks that the webhook receiver can answer Zoom's URL
// validation challenge.
func (c *Config) ValidateWebhook() error {
	if c.WebhookSecret == "" {
		return fmt.Errorf("ZOOM_WEBHOOK_SECRET_TOKEN must be set")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
