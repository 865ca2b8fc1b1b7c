package document

import "time"

// Meeting is everything a minutes document can show.
type Meeting struct {
	Info        string
	Minutes     string
	Transcript  string
	GeneratedAt time.Time
}

// Writer renders meetings into Word documents.
type Writer interface {
	// WriteMinutes writes the meeting info and the minutes.
	WriteMinutes(m Meeting, path string) error
	// WriteComplete also appends the full transcript.
	WriteComplete(m Meeting, path string) error
}
