package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Send(_ context.Context, message string) error {
	f.messages = append(f.messages, message)
	return f.err
}

func postEvent(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleEvent(rec, req)
	return rec
}

func TestHandleURLValidation(t *testing.T) {
	h := NewHandler("abc", "", nil, nil)

	rec := postEvent(h, `{"event":"endpoint.url_validation","payload":{"plainToken":"xyz"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp validationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "xyz", resp.PlainToken)

	mac := hmac.New(sha256.New, []byte("abc"))
	mac.Write([]byte("xyz"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), resp.EncryptedToken)
}

func TestHandleURLValidationWithoutSecret(t *testing.T) {
	h := NewHandler("", "", nil, nil)

	rec := postEvent(h, `{"event":"endpoint.url_validation","payload":{"plainToken":"xyz"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleMalformedBody(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewHandler("abc", "", notifier, nil)

	rec := postEvent(h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, notifier.messages)
}

func TestHandleUnknownEvent(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewHandler("abc", "", notifier, nil)

	rec := postEvent(h, `{"event":"foo.bar","payload":{"object":{}}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, notifier.messages)
}

func TestHandleChatMessage(t *testing.T) {
	tests := []struct {
		name      string
		selfEmail string
		body      string
		want      []string
	}{
		{
			name: "channel message",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"message":"hello team",
				"channel_name":"general",
				"sender":{"display_name":"Ada","email":"ada@example.com"}}}}`,
			want: []string{"💬 Zoom Chat from *Ada* in general:\nhello team"},
		},
		{
			name: "direct message omits channel",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"message":"ping",
				"channel_name":"DM",
				"sender":{"display_name":"Ada"}}}}`,
			want: []string{"💬 Zoom Chat from *Ada*:\nping"},
		},
		{
			name: "sender falls back to email then Unknown",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"message":"hi",
				"sender":{"email":"ada@example.com"}}}}`,
			want: []string{"💬 Zoom Chat from *ada@example.com*:\nhi"},
		},
		{
			name: "empty message placeholder",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"sender":{"display_name":"Ada"}}}}`,
			want: []string{"💬 Zoom Chat from *Ada*:\n(no text)"},
		},
		{
			name:      "self message suppressed",
			selfEmail: "me@example.com",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"message":"note to self",
				"sender":{"display_name":"Me","email":"me@example.com"}}}}`,
			want: nil,
		},
		{
			name:      "self match is case insensitive",
			selfEmail: "me@example.com",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"message":"note to self",
				"sender":{"email":"Me@Example.COM"}}}}`,
			want: nil,
		},
		{
			name:      "other sender passes despite self email set",
			selfEmail: "me@example.com",
			body: `{"event":"chat_message.sent","payload":{"object":{
				"message":"hi",
				"sender":{"display_name":"Ada","email":"ada@example.com"}}}}`,
			want: []string{"💬 Zoom Chat from *Ada*:\nhi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			h := NewHandler("abc", tt.selfEmail, notifier, nil)

			rec := postEvent(h, tt.body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, notifier.messages)
		})
	}
}

func TestHandleMeetingEvents(t *testing.T) {
	tests := []struct {
		event string
		topic string
		want  string
	}{
		{"meeting.started", "Standup", "📹 Zoom Meeting started: *Standup*"},
		{"meeting.ended", "Standup", "📹 Zoom Meeting ended: *Standup*"},
		{"recording.completed", "Standup", "🎥 Zoom Recording ready: *Standup*"},
		{"meeting.started", "", "📹 Zoom Meeting started: *Untitled*"},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			notifier := &fakeNotifier{}
			h := NewHandler("abc", "", notifier, nil)

			body := `{"event":"` + tt.event + `","payload":{"object":{"topic":"` + tt.topic + `"}}}`
			rec := postEvent(h, body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []string{tt.want}, notifier.messages)
		})
	}
}

func TestHandleNotifierFailureStillAcks(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("send failed")}
	h := NewHandler("abc", "", notifier, nil)

	rec := postEvent(h, `{"event":"meeting.started","payload":{"object":{"topic":"Standup"}}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, notifier.messages, 1)
}

func TestHandleHealth(t *testing.T) {
	h := NewHandler("abc", "", nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","service":"zoom-webhook"}`, rec.Body.String())
}
