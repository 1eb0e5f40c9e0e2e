package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// The provider's summary schema is inconsistent across account types and API
// revisions: the same logical content shows up under different key names,
// and some fields arrive either as a plain string or as structured objects.
// Each logical field therefore has an ordered list of candidate keys, tried
// in sequence; the first present value wins. Both shapes must keep working.
var (
	summaryTitleKeys    = []string{"summary_title", "meeting_topic", "topic"}
	summaryOverviewKeys = []string{"summary_overview", "summary", "overview"}
	summaryDetailKeys   = []string{"summary_details", "details"}
	summaryNextKeys     = []string{"next_steps", "summary_next_steps"}
)

// Summary is a normalized AI companion meeting summary.
type Summary struct {
	Title     string
	Overview  string
	Sections  []SummarySection
	NextSteps []string
}

// SummarySection is one labeled block of summary details. Label may be
// empty when the provider sent the details as a single plain string.
type SummarySection struct {
	Label string
	Text  string
}

// SummaryListItem is one entry from the account-wide summary listing.
type SummaryListItem struct {
	MeetingUUID  string `json:"meeting_uuid"`
	MeetingID    int64  `json:"meeting_id"`
	MeetingTopic string `json:"meeting_topic"`
	StartTime    string `json:"summary_start_time"`
	CreatedTime  string `json:"summary_created_time"`
}

// GetMeetingSummary fetches and normalizes the AI summary of a meeting.
func (c *Client) GetMeetingSummary(ctx context.Context, meetingID string) (*Summary, error) {
	data, err := c.Do(ctx, "GET", fmt.Sprintf("/meetings/%s/meeting_summary", meetingID), nil, nil)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no summary available for meeting %s", meetingID)
	}
	return ParseSummary(data)
}

// ListSummaries returns the first page of meeting summaries for the account,
// optionally bounded by from/to dates (YYYY-MM-DD).
func (c *Client) ListSummaries(ctx context.Context, from, to string) ([]SummaryListItem, error) {
	q := pageQuery(defaultPageSize)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}

	var page struct {
		Summaries []SummaryListItem `json:"summaries"`
	}
	if err := c.GetJSON(ctx, "/meetings/meeting_summaries", q, &page); err != nil {
		return nil, err
	}
	return page.Summaries, nil
}

// ParseSummary normalizes a raw summary document.
func ParseSummary(raw json.RawMessage) (*Summary, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}

	s := &Summary{
		Title:    pickString(obj, summaryTitleKeys...),
		Overview: pickOverview(obj),
	}
	if v, ok := pickField(obj, summaryDetailKeys...); ok {
		s.Sections = asSections(v)
	}
	if v, ok := pickField(obj, summaryNextKeys...); ok {
		s.NextSteps = asStringList(v)
	}
	return s, nil
}

// Markdown renders the summary as a markdown document.
func (s *Summary) Markdown() string {
	var b strings.Builder

	title := s.Title
	if title == "" {
		title = "Meeting Summary"
	}
	fmt.Fprintf(&b, "# %s\n", title)

	if s.Overview != "" {
		b.WriteString("\n## Overview\n\n")
		b.WriteString(s.Overview)
		b.WriteString("\n")
	}

	if len(s.Sections) > 0 {
		b.WriteString("\n## Details\n")
		for _, sec := range s.Sections {
			if sec.Label != "" {
				fmt.Fprintf(&b, "\n### %s\n", sec.Label)
			}
			b.WriteString("\n")
			b.WriteString(sec.Text)
			b.WriteString("\n")
		}
	}

	if len(s.NextSteps) > 0 {
		b.WriteString("\n## Next Steps\n\n")
		for _, step := range s.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
	}

	return b.String()
}

// pickField returns the first present value among the candidate keys.
func pickField(obj map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// pickString returns the first candidate key holding a non-empty string.
func pickString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// pickOverview handles the dual shape of the overview field: a plain string,
// or a nested object carrying its own overview keys.
func pickOverview(obj map[string]any) string {
	v, ok := pickField(obj, summaryOverviewKeys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		return pickString(t, summaryOverviewKeys...)
	}
	return ""
}

// asSections normalizes the details field: a plain string becomes a single
// unlabeled section, a list becomes labeled sections.
func asSections(v any) []SummarySection {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []SummarySection{{Text: t}}
	case []any:
		var sections []SummarySection
		for _, item := range t {
			switch e := item.(type) {
			case string:
				if e != "" {
					sections = append(sections, SummarySection{Text: e})
				}
			case map[string]any:
				sec := SummarySection{
					Label: pickString(e, "label", "section_title"),
					Text:  pickString(e, "summary", "section_details"),
				}
				if sec.Label != "" || sec.Text != "" {
					sections = append(sections, sec)
				}
			}
		}
		return sections
	}
	return nil
}

// asStringList normalizes a list that may hold plain strings or objects
// with a details field.
func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s, isStr := v.(string); isStr && s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, item := range items {
		switch e := item.(type) {
		case string:
			if e != "" {
				out = append(out, e)
			}
		case map[string]any:
			if s := pickString(e, "details", "summary", "text"); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
