package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ZOOM_ACCOUNT_ID", "ZOOM_CLIENT_ID", "ZOOM_CLIENT_SECRET",
		"ZOOM_USER_EMAIL", "TZ", "ZOOM_RTMS_CLIENT_ID",
		"ZOOM_WEBHOOK_SECRET_TOKEN", "ZOOM_NOTIFY_TARGET", "ZOOM_NOTIFY_CHANNEL",
	} {
		// t.Setenv records the original value for restore, Unsetenv removes
		// the variable entirely so godotenv treats it as absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdir mirrors t.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultNotifyChannel, cfg.NotifyChannel)
	assert.Empty(t, cfg.AccountID)
	assert.Equal(t, "me", cfg.UserID())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("ZOOM_ACCOUNT_ID", "acc")
	t.Setenv("ZOOM_CLIENT_ID", "id")
	t.Setenv("ZOOM_CLIENT_SECRET", "secret")
	t.Setenv("ZOOM_USER_EMAIL", "ada@example.com")
	t.Setenv("TZ", "Europe/Berlin")
	t.Setenv("ZOOM_NOTIFY_CHANNEL", "signal")

	cfg := Load()
	assert.Equal(t, "acc", cfg.AccountID)
	assert.Equal(t, "id", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "ada@example.com", cfg.UserID())
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "signal", cfg.NotifyChannel)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	env := "ZOOM_ACCOUNT_ID=from-dotenv\nZOOM_WEBHOOK_SECRET_TOKEN=hook-secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0600))
	chdir(t, dir)

	cfg := Load()
	assert.Equal(t, "from-dotenv", cfg.AccountID)
	assert.Equal(t, "hook-secret", cfg.WebhookSecret)
}

func TestLoadEnvWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ZOOM_ACCOUNT_ID=from-dotenv\n"), 0600))
	chdir(t, dir)
	t.Setenv("ZOOM_ACCOUNT_ID", "from-env")

	cfg := Load()
	assert.Equal(t, "from-env", cfg.AccountID)
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "complete",
			cfg:  Config{AccountID: "a", ClientID: "b", ClientSecret: "c"},
		},
		{
			name:    "missing account",
			cfg:     Config{ClientID: "b", ClientSecret: "c"},
			wantErr: true,
		},
		{
			name:    "missing secret",
			cfg:     Config{AccountID: "a", ClientID: "b"},
			wantErr: true,
		},
		{
			name:    "all missing",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCredentials()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateWebhook(t *testing.T) {
	assert.Error(t, (&Config{}).ValidateWebhook())
	assert.NoError(t, (&Config{WebhookSecret: "abc"}).ValidateWebhook())
}
