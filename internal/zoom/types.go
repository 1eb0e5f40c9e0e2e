package zoom

// Meeting is a scheduled or live meeting as returned by the meetings
// endpoints.
type Meeting struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone"`
	JoinURL   string `json:"join_url"`
	Password  string `json:"password"`
	Agenda    string `json:"agenda"`
}

// CreateMeetingRequest is the body for scheduling a meeting.
type CreateMeetingRequest struct {
	Topic     string `json:"topic"`
	Type      int    `json:"type"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone"`
	Agenda    string `json:"agenda,omitempty"`
	Password  string `json:"password,omitempty"`
}

// UpdateMeetingRequest carries the fields of a meeting that can be patched.
// Empty fields are omitted from the request.
type UpdateMeetingRequest struct {
	Topic     string `json:"topic,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (r UpdateMeetingRequest) IsEmpty() bool {
	return r.Topic == "" && r.StartTime == "" && r.Duration == 0
}

// RecordingFile is a single downloadable artifact of a recorded meeting.
type RecordingFile struct {
	ID            string `json:"id"`
	RecordingType string `json:"recording_type"`
	FileType      string `json:"file_type"`
	FileExtension string `json:"file_extension"`
	FileSize      int64  `json:"file_size"`
	DownloadURL   string `json:"download_url"`
}

// RecordingMeeting is a meeting with its cloud recording files.
type RecordingMeeting struct {
	ID             int64           `json:"id"`
	UUID           string          `json:"uuid"`
	Topic          string          `json:"topic"`
	StartTime      string          `json:"start_time"`
	RecordingFiles []RecordingFile `json:"recording_files"`
}

// User is a Zoom user profile.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Type      int    `json:"type"`
	PMI       int64  `json:"pmi"`
	Timezone  string `json:"timezone"`
	Status    string `json:"status"`
}

// Channel is a Team Chat channel.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// ChatMessage is a message in a channel or direct conversation.
type ChatMessage struct {
	ID       string `json:"id"`
	Sender   string `json:"sender"`
	Message  string `json:"message"`
	DateTime string `json:"date_time"`
}

// Contact is a company or external chat contact.
type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CallLog is one entry from the phone call history.
type CallLog struct {
	Direction    string `json:"direction"`
	CallerNumber string `json:"caller_number"`
	CalleeNumber string `json:"callee_number"`
	Duration     int    `json:"duration"`
	DateTime     string `json:"date_time"`
}

// Number returns whichever of the caller or callee numbers is present,
// matching the direction of the call.
func (c CallLog) Number() string {
	if c.CallerNumber != "" {
		return c.CallerNumber
	}
	if c.CalleeNumber != "" {
		return c.CalleeNumber
	}
	return "?"
}
