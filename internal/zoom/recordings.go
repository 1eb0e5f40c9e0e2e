package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListRecordings returns the first page of the user's cloud recordings,
// optionally bounded by from/to dates (YYYY-MM-DD).
func (c *Client) ListRecordings(ctx context.Context, userID, from, to string) ([]RecordingMeeting, error) {
	q := pageQuery(defaultPageSize)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}

	var page struct {
		Meetings []RecordingMeeting `json:"meetings"`
	}
	if err := c.GetJSON(ctx, fmt.Sprintf("/users/%s/recordings", userID), q, &page); err != nil {
		return nil, err
	}
	return page.Meetings, nil
}

// GetRecordings returns the raw recording details of a meeting.
func (c *Client) GetRecordings(ctx context.Context, meetingID string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, fmt.Sprintf("/meetings/%s/recordings", meetingID), nil, nil)
}

// MeetingRecordings returns the typed recording files of a meeting.
func (c *Client) MeetingRecordings(ctx context.Context, meetingID string) (*RecordingMeeting, error) {
	var rec RecordingMeeting
	if err := c.GetJSON(ctx, fmt.Sprintf("/meetings/%s/recordings", meetingID), url.Values{}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteRecordings removes all recordings of a meeting.
func (c *Client) DeleteRecordings(ctx context.Context, meetingID string) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/meetings/%s/recordings", meetingID), nil, nil)
	return err
}
