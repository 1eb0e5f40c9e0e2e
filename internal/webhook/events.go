package webhook

import (
	"encoding/json"
	"fmt"
)

// Event names the receiver acts on. Anything else is acknowledged and
// logged.
const (
	EventURLValidation      = "endpoint.url_validation"
	EventChatMessageSent    = "chat_message.sent"
	EventMeetingStarted     = "meeting.started"
	EventMeetingEnded       = "meeting.ended"
	EventRecordingCompleted = "recording.completed"
)

// Event is the webhook envelope. Only the event name and a few payload
// fields are inspected; the object is kept raw and decoded per event type.
type Event struct {
	Event   string  `json:"event"`
	Payload Payload `json:"payload"`
}

// Payload carries the validation token or the event object.
type Payload struct {
	PlainToken string          `json:"plainToken"`
	Object     json.RawMessage `json:"object"`
}

// chatMessageObject is the payload object of a chat_message.sent event.
type chatMessageObject struct {
	Message     string `json:"message"`
	ChannelName string `json:"channel_name"`
	DateTime    string `json:"date_time"`
	Sender      struct {
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	} `json:"sender"`
}

// meetingObject covers the meeting.* and recording.completed payloads; only
// the topic is used.
type meetingObject struct {
	Topic string `json:"topic"`
}

// validationResponse answers the endpoint.url_validation challenge.
type validationResponse struct {
	PlainToken     string `json:"plainToken"`
	EncryptedToken string `json:"encryptedToken"`
}

// healthResponse is the static payload returned on GET.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (o *chatMessageObject) senderName() string {
	if o.Sender.DisplayName != "" {
		return o.Sender.DisplayName
	}
	if o.Sender.Email != "" {
		return o.Sender.Email
	}
	return "Unknown"
}

// notification templates, one per handled event.

func chatNotification(o *chatMessageObject) string {
	text := o.Message
	if text == "" {
		text = "(no text)"
	}
	if o.ChannelName != "" && o.ChannelName != "DM" {
		return fmt.Sprintf("💬 Zoom Chat from *%s* in %s:\n%s", o.senderName(), o.ChannelName, text)
	}
	return fmt.Sprintf("💬 Zoom Chat from *%s*:\n%s", o.senderName(), text)
}

func meetingNotification(event string, o *meetingObject) string {
	topic := o.Topic
	if topic == "" {
		topic = "Untitled"
	}
	switch event {
	case EventMeetingStarted:
		return fmt.Sprintf("📹 Zoom Meeting started: *%s*", topic)
	case EventMeetingEnded:
		return fmt.Sprintf("📹 Zoom Meeting ended: *%s*", topic)
	case EventRecordingCompleted:
		return fmt.Sprintf("🎥 Zoom Recording ready: *%s*", topic)
	}
	return ""
}
