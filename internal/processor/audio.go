package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcode converts a recording to mono audio at the configured sample rate
// inside the temp directory.
func (p *implProcessor) Transcode(ctx context.Context, inputPath string) (string, error) {
	if err := os.MkdirAll(p.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	format := strings.ToLower(p.audio.Format)
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	audioPath := filepath.Join(p.tempDir, "converted_"+stem+"."+format)

	p.logger.Info(ctx, "Converting audio: %s -> %s", inputPath, audioPath)

	// -vn drops any video stream; -ar/-ac resample to what the recogniser expects.
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", strconv.Itoa(p.audio.SampleRate),
		"-ac", strconv.Itoa(p.audio.Channels),
	}
	args = append(args, codecArgs(format, p.audio.Bitrate)...)
	args = append(args, "-y", audioPath)

	if _, err := p.executor.Execute(ctx, p.audio.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	p.logger.Info(ctx, "Audio converted successfully: %s", audioPath)
	return audioPath, nil
}

func codecArgs(format, bitrate string) []string {
	switch format {
	case "mp3":
		return []string{"-c:a", "libmp3lame", "-b:a", bitrate}
	case "flac":
		return []string{"-c:a", "flac"}
	default:
		return []string{"-c:a", "pcm_s16le"}
	}
}
