package zoom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DownloadResult reports where a file was written and how large it is.
type DownloadResult struct {
	Path string
	Size int64
}

// DownloadRecordings streams every recording file of a meeting into dir,
// creating it if absent. When transcriptOnly is set, only transcript files
// are downloaded. File names are built from the meeting topic, the recording
// type, the file ID, and the file extension.
func (c *Client) DownloadRecordings(ctx context.Context, meetingID, dir string, transcriptOnly bool) ([]DownloadResult, error) {
	rec, err := c.MeetingRecordings(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	files := rec.RecordingFiles
	if transcriptOnly {
		files = filterTranscripts(files)
	}
	if len(files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var results []DownloadResult
	for _, f := range files {
		if f.DownloadURL == "" {
			continue
		}
		name := recordingFileName(rec.Topic, f)
		path := filepath.Join(dir, name)

		size, err := c.downloadFile(ctx, f.DownloadURL, token.AccessToken, path)
		if err != nil {
			return results, fmt.Errorf("failed to download %s: %w", name, err)
		}
		results = append(results, DownloadResult{Path: path, Size: size})
	}
	return results, nil
}

// DownloadSummary assembles the markdown summary document of a meeting and
// writes it into dir.
func (c *Client) DownloadSummary(ctx context.Context, meetingID, dir string) (*DownloadResult, error) {
	summary, err := c.GetMeetingSummary(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	name := fmt.Sprintf("%s_summary_%s.md", sanitizeFileName(summary.Title), meetingID)
	path := filepath.Join(dir, name)

	doc := summary.Markdown()
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}
	return &DownloadResult{Path: path, Size: int64(len(doc))}, nil
}

// downloadFile streams one URL to disk and returns the number of bytes
// written.
func (c *Client) downloadFile(ctx context.Context, rawURL, accessToken, path string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	return io.Copy(out, resp.Body)
}

func filterTranscripts(files []RecordingFile) []RecordingFile {
	var out []RecordingFile
	for _, f := range files {
		if strings.EqualFold(f.FileType, "TRANSCRIPT") || strings.EqualFold(f.RecordingType, "audio_transcript") {
			out = append(out, f)
		}
	}
	return out
}

// recordingFileName builds <topic>_<type>_<id>.<ext> with a sanitized topic.
func recordingFileName(topic string, f RecordingFile) string {
	ext := strings.ToLower(f.FileExtension)
	if ext == "" {
		ext = strings.ToLower(f.FileType)
	}
	if ext == "" {
		ext = "bin"
	}
	recType := strings.ToLower(f.RecordingType)
	if recType == "" {
		recType = "recording"
	}
	return fmt.Sprintf("%s_%s_%s.%s", sanitizeFileName(topic), recType, f.ID, ext)
}

// sanitizeFileName reduces a topic to a safe file name component.
func sanitizeFileName(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "untitled"
	}
	const maxLen = 80
	if len(out) > maxLen {
		out = out[:maxLen]
	}
	return out
}
