package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs whisper.cpp over audioPath and returns the plain transcript.
func (p *implProcessor) Transcribe(ctx context.Context, audioPath string) (string, error) {
	// Whisper appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	p.logger.Info(ctx, "Starting transcription with %d threads: %s", p.whisper.Threads, audioPath)

	args := []string{
		"-m", p.whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", p.whisper.Language,
		"-t", strconv.Itoa(p.whisper.Threads),
		"--output-file", outputPrefix,
	}
	if p.whisper.Prompt != "" {
		args = append(args, "--prompt", p.whisper.Prompt)
	}

	if _, err := p.executor.Execute(ctx, p.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer p.Cleanup(ctx, txtPath)

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := normalizeTranscript(string(data))
	p.logger.Info(ctx, "Transcription completed: %d chars", len([]rune(text)))
	return text, nil
}

// normalizeTranscript trims every line and drops blank ones.
func normalizeTranscript(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
