package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Meeting list types accepted by the meetings endpoint.
const (
	MeetingTypeUpcoming = "upcoming"
	MeetingTypeLive     = "live"
)

// RTMS actions for realtime media streams.
const (
	RTMSActionStart = "start"
	RTMSActionStop  = "stop"
)

// ListMeetings returns the first page of the user's meetings of the given
// type (upcoming or live).
func (c *Client) ListMeetings(ctx context.Context, userID, meetingType string) ([]Meeting, error) {
	q := pageQuery(defaultPageSize)
	q.Set("type", meetingType)

	var page struct {
		Meetings []Meeting `json:"meetings"`
	}
	if err := c.GetJSON(ctx, fmt.Sprintf("/users/%s/meetings", userID), q, &page); err != nil {
		return nil, err
	}
	return page.Meetings, nil
}

// GetMeeting returns the raw meeting details for pretty-printing.
func (c *Client) GetMeeting(ctx context.Context, meetingID string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, "/meetings/"+meetingID, nil, nil)
}

// CreateMeeting schedules a meeting for the user.
func (c *Client) CreateMeeting(ctx context.Context, userID string, req CreateMeetingRequest) (*Meeting, error) {
	data, err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/meetings", userID), nil, req)
	if err != nil {
		return nil, err
	}
	var m Meeting
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode created meeting: %w", err)
	}
	return &m, nil
}

// UpdateMeeting patches an existing meeting.
func (c *Client) UpdateMeeting(ctx context.Context, meetingID string, req UpdateMeetingRequest) error {
	_, err := c.Do(ctx, http.MethodPatch, "/meetings/"+meetingID, nil, req)
	return err
}

// DeleteMeeting removes a meeting.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/meetings/"+meetingID, nil, nil)
	return err
}

// SetRTMSStatus starts or stops realtime media streams for a live meeting.
func (c *Client) SetRTMSStatus(ctx context.Context, meetingID, action, rtmsClientID string) error {
	body := map[string]any{
		"action": action,
		"settings": map[string]string{
			"client_id": rtmsClientID,
		},
	}
	_, err := c.Do(ctx, http.MethodPatch, fmt.Sprintf("/live_meetings/%s/rtms_app/status", meetingID), nil, body)
	return err
}
