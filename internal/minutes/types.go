package minutes

import "time"

// Observer receives state changes with a progress fraction in [0, 1].
type Observer func(state State, progress float64)

type GenerateInput struct {
	MeetingInfo   string
	Transcription string
	// CustomPrompt replaces the configured template when non-empty.
	CustomPrompt string
	Observer     Observer
}

// GenerateResult describes one attempt. On failure it still carries the
// session id of the logged record.
type GenerateResult struct {
	Minutes        string
	SessionID      string
	State          State
	TotalTokens    int
	ProcessingTime time.Duration
}

type Transcript struct {
	Source   string
	Text     string
	Duration float64
}

type ProcessInput struct {
	AudioPath    string
	MeetingInfo  string
	CustomPrompt string
	// OutputDir overrides the configured output directory.
	OutputDir string
	Observer  Observer
}

type ProcessResult struct {
	Transcript   *Transcript
	Generation   *GenerateResult
	MinutesPath  string
	CompletePath string
}
