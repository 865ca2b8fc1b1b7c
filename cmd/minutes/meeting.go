package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/minutes"
)

// meetingFlags collects the meeting description from flags or a file.
type meetingFlags struct {
	infoFile   string
	promptFile string
	details    minutes.MeetingDetails
}

func (m *meetingFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&m.infoFile, "info-file", "", "file with the free-text meeting description")
	f.StringVar(&m.promptFile, "prompt-file", "", "custom prompt template with {slot} placeholders")
	f.StringVar(&m.details.Time, "time", "", "meeting time")
	f.StringVar(&m.details.Location, "location", "", "meeting location")
	f.StringVar(&m.details.Host, "host", "", "meeting host")
	f.StringVar(&m.details.Participants, "participants", "", "participants")
	f.StringVar(&m.details.Type, "type", "", "meeting type")
	f.StringVar(&m.details.Status, "status", "", "meeting status")
	f.StringVar(&m.details.Topics, "topics", "", "main topics")
	f.StringVar(&m.details.Background, "background", "", "background information")
	f.StringVar(&m.details.Notes, "notes", "", "other notes")
}

// info returns the meeting description. A description file is used verbatim
// unless field flags are also set; then the file is parsed and the flags
// override its fields.
func (m *meetingFlags) info() (string, error) {
	if m.infoFile == "" {
		return m.details.Format(), nil
	}

	data, err := os.ReadFile(m.infoFile)
	if err != nil {
		return "", fmt.Errorf("read meeting info: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if m.details == (minutes.MeetingDetails{}) {
		return text, nil
	}

	merged := minutes.ParseMeetingDetails(text)
	overlay(&merged.Time, m.details.Time)
	overlay(&merged.Location, m.details.Location)
	overlay(&merged.Host, m.details.Host)
	overlay(&merged.Participants, m.details.Participants)
	overlay(&merged.Type, m.details.Type)
	overlay(&merged.Status, m.details.Status)
	overlay(&merged.Topics, m.details.Topics)
	overlay(&merged.Background, m.details.Background)
	overlay(&merged.Notes, m.details.Notes)
	return merged.Format(), nil
}

func overlay(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}

// hint prints the description template when neither a file nor any field was given.
func (m *meetingFlags) hint(w io.Writer) {
	if m.infoFile != "" || m.details != (minutes.MeetingDetails{}) {
		return
	}
	fmt.Fprintln(w, "no meeting description given; pass --info-file with a description such as:")
	fmt.Fprintln(w, config.MeetingInfoTemplate)
	fmt.Fprintln(w)
}

func (m *meetingFlags) prompt() (string, error) {
	if m.promptFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(m.promptFile)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return string(data), nil
}
