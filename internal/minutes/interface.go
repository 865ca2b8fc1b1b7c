package minutes

import "context"

// Orchestrator runs the recording-to-minutes pipeline. Each operation
// rejects a second concurrent invocation of itself with a failure.Busy error.
type Orchestrator interface {
	// Generate asks the model for minutes and records exactly one
	// conversation log entry per call, whatever the outcome.
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
	// Transcribe validates, converts and transcribes a recording.
	Transcribe(ctx context.Context, path string) (*Transcript, error)
	// Process runs Transcribe, Generate and writes the documents.
	Process(ctx context.Context, in ProcessInput) (*ProcessResult, error)
}
