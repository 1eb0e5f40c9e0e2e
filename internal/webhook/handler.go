package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/teemow/zoomctl/internal/instrumentation"
	"github.com/teemow/zoomctl/internal/logging"
)

// Notifier delivers one human-readable message to the configured channel.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// Handler processes Zoom webhook deliveries. Once a body parses, the
// response is always 200: Zoom retries non-2xx deliveries aggressively and
// notification failures are our problem, not the provider's.
type Handler struct {
	secret    string
	selfEmail string
	notifier  Notifier
	metrics   *instrumentation.Metrics
	logger    *slog.Logger
}

// NewHandler creates a webhook handler. notifier may be nil, in which case
// notifications are logged but not delivered.
func NewHandler(secret, selfEmail string, notifier Notifier, metrics *instrumentation.Metrics) *Handler {
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &Handler{
		secret:    secret,
		selfEmail: selfEmail,
		notifier:  notifier,
		metrics:   metrics,
		logger:    slog.Default(),
	}
}

// HandleEvent is the POST endpoint for webhook deliveries.
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("malformed webhook body", logging.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	h.metrics.RecordEvent(ctx, event.Event)

	if event.Event == EventURLValidation {
		h.handleValidation(w, &event)
		return
	}

	if message, ok := h.renderNotification(&event); ok {
		h.deliver(ctx, message)
	}

	w.WriteHeader(http.StatusOK)
}

// HandleHealth is the GET health check endpoint.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Service: "zoom-webhook"})
}

// handleValidation answers the endpoint ownership challenge: an HMAC-SHA256
// digest of the provider-supplied plain token, keyed with the shared secret.
// The secret itself is never transmitted.
func (h *Handler) handleValidation(w http.ResponseWriter, event *Event) {
	plainToken := event.Payload.PlainToken
	if h.secret == "" || plainToken == "" {
		h.logger.Warn("url validation challenge without secret or token")
		w.WriteHeader(http.StatusOK)
		return
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(plainToken))
	encrypted := hex.EncodeToString(mac.Sum(nil))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(validationResponse{
		PlainToken:     plainToken,
		EncryptedToken: encrypted,
	})
	h.logger.Info("url validation successful")
}

// renderNotification maps a recognized event to its notification text.
// Returns false for self-messages and unrecognized events.
func (h *Handler) renderNotification(event *Event) (string, bool) {
	switch event.Event {
	case EventChatMessageSent:
		var obj chatMessageObject
		if err := json.Unmarshal(event.Payload.Object, &obj); err != nil {
			h.logger.Warn("unparseable chat message object", logging.Err(err))
			return "", false
		}
		if h.selfEmail != "" && strings.EqualFold(obj.Sender.Email, h.selfEmail) {
			h.logger.Debug("suppressing self message", logging.UserHash(obj.Sender.Email))
			h.metrics.RecordNotification(context.Background(), instrumentation.ResultSuppressed)
			return "", false
		}
		return chatNotification(&obj), true

	case EventMeetingStarted, EventMeetingEnded, EventRecordingCompleted:
		var obj meetingObject
		if err := json.Unmarshal(event.Payload.Object, &obj); err != nil {
			h.logger.Warn("unparseable event object", logging.Event(event.Event), logging.Err(err))
			return "", false
		}
		return meetingNotification(event.Event, &obj), true

	default:
		h.logger.Info("unhandled event", logging.Event(event.Event))
		return "", false
	}
}

// deliver sends a notification, swallowing failures. The webhook response
// must not depend on the notifier.
func (h *Handler) deliver(ctx context.Context, message string) {
	if h.notifier == nil {
		h.logger.Info("notification skipped, no notifier configured", "message", message)
		return
	}
	if err := h.notifier.Send(ctx, message); err != nil {
		h.logger.Error("notification delivery failed", logging.Err(err))
		h.metrics.RecordNotification(ctx, instrumentation.ResultError)
		return
	}
	h.logger.Info("notification sent")
	h.metrics.RecordNotification(ctx, instrumentation.ResultSuccess)
}
