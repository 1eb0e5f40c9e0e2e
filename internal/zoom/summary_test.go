package zoom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummaryCandidateKeyOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Summary
	}{
		{
			name: "summary_title wins over meeting_topic",
			raw:  `{"summary_title":"Weekly Sync","meeting_topic":"ignored","topic":"ignored too"}`,
			want: Summary{Title: "Weekly Sync"},
		},
		{
			name: "meeting_topic used when summary_title missing",
			raw:  `{"meeting_topic":"Planning","topic":"ignored"}`,
			want: Summary{Title: "Planning"},
		},
		{
			name: "topic as last resort",
			raw:  `{"topic":"Retro"}`,
			want: Summary{Title: "Retro"},
		},
		{
			name: "empty string falls through to next candidate",
			raw:  `{"summary_title":"","meeting_topic":"Planning"}`,
			want: Summary{Title: "Planning"},
		},
		{
			name: "overview as plain string",
			raw:  `{"summary_overview":"We discussed the roadmap."}`,
			want: Summary{Overview: "We discussed the roadmap."},
		},
		{
			name: "overview nested under summary object",
			raw:  `{"summary":{"summary_overview":"Nested overview."}}`,
			want: Summary{Overview: "Nested overview."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSummary(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestParseSummaryDetails(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []SummarySection
	}{
		{
			name: "plain string becomes one unlabeled section",
			raw:  `{"summary_details":"Just one block of text."}`,
			want: []SummarySection{{Text: "Just one block of text."}},
		},
		{
			name: "labeled sections",
			raw: `{"summary_details":[
				{"label":"Roadmap","summary":"Ship v2 by June."},
				{"section_title":"Hiring","section_details":"Two open roles."}
			]}`,
			want: []SummarySection{
				{Label: "Roadmap", Text: "Ship v2 by June."},
				{Label: "Hiring", Text: "Two open roles."},
			},
		},
		{
			name: "list of plain strings",
			raw:  `{"details":["First point.","Second point."]}`,
			want: []SummarySection{{Text: "First point."}, {Text: "Second point."}},
		},
		{
			name: "empty entries dropped",
			raw:  `{"summary_details":["",{"label":"","summary":""}]}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSummary(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Sections)
		})
	}
}

func TestParseSummaryNextSteps(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain strings",
			raw:  `{"next_steps":["Follow up with legal","Book the venue"]}`,
			want: []string{"Follow up with legal", "Book the venue"},
		},
		{
			name: "objects with details",
			raw:  `{"summary_next_steps":[{"details":"Send the deck"},{"text":"Review PRs"}]}`,
			want: []string{"Send the deck", "Review PRs"},
		},
		{
			name: "next_steps wins over summary_next_steps",
			raw:  `{"next_steps":["A"],"summary_next_steps":["B"]}`,
			want: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSummary(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.NextSteps)
		})
	}
}

func TestParseSummaryInvalid(t *testing.T) {
	_, err := ParseSummary(json.RawMessage(`[1,2,3]`))
	assert.Error(t, err)
}

func TestSummaryMarkdown(t *testing.T) {
	s := &Summary{
		Title:    "Weekly Sync",
		Overview: "We discussed the roadmap.",
		Sections: []SummarySection{
			{Label: "Roadmap", Text: "Ship v2 by June."},
			{Text: "Unlabeled remarks."},
		},
		NextSteps: []string{"Send the deck"},
	}

	md := s.Markdown()
	assert.Contains(t, md, "# Weekly Sync\n")
	assert.Contains(t, md, "## Overview\n\nWe discussed the roadmap.\n")
	assert.Contains(t, md, "## Details\n")
	assert.Contains(t, md, "### Roadmap\n\nShip v2 by June.\n")
	assert.Contains(t, md, "Unlabeled remarks.\n")
	assert.Contains(t, md, "## Next Steps\n\n- Send the deck\n")
}

func TestSummaryMarkdownFallbackTitle(t *testing.T) {
	md := (&Summary{}).Markdown()
	assert.Equal(t, "# Meeting Summary\n", md)
}
