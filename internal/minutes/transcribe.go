package minutes

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/failure"
)

func (o *implOrchestrator) Transcribe(ctx context.Context, path string) (*Transcript, error) {
	if !o.transcribing.CompareAndSwap(false, true) {
		return nil, failure.New(failure.Busy, "transcribe", "语音识别正在进行中，请稍候")
	}
	defer o.transcribing.Store(false)

	o.logger.Info(ctx, "Validating recording: %s", path)
	info, err := o.processor.Validate(ctx, path)
	if err != nil {
		return nil, err
	}

	audioPath, err := o.processor.Transcode(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("transcode %s: %w", path, err)
	}
	defer o.processor.Cleanup(ctx, audioPath)

	text, err := o.processor.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", path, err)
	}

	o.logger.Info(ctx, "Transcribed %s: %.1fs audio, %d chars", path, info.Duration, len([]rune(text)))
	return &Transcript{Source: path, Text: text, Duration: info.Duration}, nil
}
