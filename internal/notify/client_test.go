package notify

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		target  string
		wantErr string
	}{
		{
			name:    "empty target",
			channel: "whatsapp",
			wantErr: "target cannot be empty",
		},
		{
			name:    "empty channel",
			target:  "+6591234567",
			wantErr: "channel cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.channel, tt.target)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewClientMissingBinary(t *testing.T) {
	if _, err := exec.LookPath(notifierBinary); err == nil {
		t.Skipf("%s is installed, skipping missing-binary test", notifierBinary)
	}

	_, err := NewClient("whatsapp", "+6591234567")
	require.Error(t, err)

	var notifyErr *NotifyError
	require.ErrorAs(t, err, &notifyErr)
	assert.Equal(t, "initialize", notifyErr.Op)
	assert.Equal(t, "+6591234567", notifyErr.Target)
}

func TestSendEmptyMessage(t *testing.T) {
	c := &Client{channel: "whatsapp", target: "+6591234567", timeout: time.Second}

	err := c.Send(context.Background(), "")
	require.Error(t, err)

	var notifyErr *NotifyError
	require.ErrorAs(t, err, &notifyErr)
	assert.Equal(t, "send", notifyErr.Op)
	assert.Contains(t, err.Error(), "message cannot be empty")
}

func TestNotifyErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &NotifyError{Op: "send", Target: "+65", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "send")
	assert.Contains(t, err.Error(), "+65")
}

func TestTarget(t *testing.T) {
	c := &Client{channel: "whatsapp", target: "+6591234567"}
	assert.Equal(t, "+6591234567", c.Target())
}
