package zoom

import (
	"context"
	"fmt"
)

// ListCallLogs returns the first page of the user's phone call logs,
// optionally bounded by from/to dates (YYYY-MM-DD).
func (c *Client) ListCallLogs(ctx context.Context, userID, from, to string) ([]CallLog, error) {
	q := pageQuery(defaultPageSize)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}

	var page struct {
		CallLogs []CallLog `json:"call_logs"`
	}
	if err := c.GetJSON(ctx, fmt.Sprintf("/phone/users/%s/call_logs", userID), q, &page); err != nil {
		return nil, err
	}
	return page.CallLogs, nil
}
