package minutes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-minutes/internal/document"
)

func (o *implOrchestrator) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	transcript, err := o.Transcribe(ctx, in.AudioPath)
	if err != nil {
		return nil, err
	}
	result := &ProcessResult{Transcript: transcript}

	gen, err := o.Generate(ctx, GenerateInput{
		MeetingInfo:   in.MeetingInfo,
		Transcription: transcript.Text,
		CustomPrompt:  in.CustomPrompt,
		Observer:      in.Observer,
	})
	result.Generation = gen
	if err != nil {
		return result, err
	}

	outputDir := in.OutputDir
	if outputDir == "" {
		outputDir = o.outputDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return result, fmt.Errorf("create output dir: %w", err)
	}

	at := o.now()
	meeting := document.Meeting{
		Info:        in.MeetingInfo,
		Minutes:     gen.Minutes,
		Transcript:  transcript.Text,
		GeneratedAt: at,
	}

	result.MinutesPath = filepath.Join(outputDir, document.MinutesFileName(at))
	if err := o.writer.WriteMinutes(meeting, result.MinutesPath); err != nil {
		return result, err
	}
	o.logger.Info(ctx, "Minutes document saved: %s", result.MinutesPath)

	if o.withComplete {
		result.CompletePath = filepath.Join(outputDir, document.CompleteFileName(at))
		if err := o.writer.WriteComplete(meeting, result.CompletePath); err != nil {
			return result, err
		}
		o.logger.Info(ctx, "Complete document saved: %s", result.CompletePath)
	}

	return result, nil
}
