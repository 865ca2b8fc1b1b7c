package processor

import "context"

// Processor prepares a meeting recording and turns it into text.
type Processor interface {
	// Validate checks existence, format, size and duration of a recording.
	Validate(ctx context.Context, path string) (*AudioInfo, error)
	// Transcode converts a recording into the audio format the recogniser expects.
	Transcode(ctx context.Context, path string) (string, error)
	// Transcribe runs speech recognition over a transcoded audio file.
	Transcribe(ctx context.Context, audioPath string) (string, error)
	// Probe reads stream metadata of a media file.
	Probe(ctx context.Context, path string) (*AudioInfo, error)
	// Cleanup removes a temporary file, logging instead of failing.
	Cleanup(ctx context.Context, path string)
}

// AudioInfo is the subset of ffprobe output the pipeline uses.
type AudioInfo struct {
	Duration   float64
	Size       int64
	BitRate    int64
	SampleRate int
	Channels   int
	Format     string
	Codec      string
}
