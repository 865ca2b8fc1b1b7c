package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/failure"
)

// SupportedFormats lists the recording extensions accepted by Validate.
var SupportedFormats = []string{".mp3", ".mp4", ".wav", ".m4a", ".flac", ".aac", ".ogg", ".wma"}

// IsSupported reports whether path has a supported recording extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

func (p *implProcessor) Validate(ctx context.Context, path string) (*AudioInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, failure.New(failure.InvalidInput, "validate", "file does not exist: "+path)
		}
		return nil, failure.Wrap(failure.InvalidInput, "validate", "cannot stat "+path, err)
	}
	if stat.IsDir() {
		return nil, failure.New(failure.InvalidInput, "validate", "not a file: "+path)
	}

	if !IsSupported(path) {
		return nil, failure.New(failure.InvalidInput, "validate",
			"unsupported file format: "+strings.ToLower(filepath.Ext(path)))
	}

	if limit := p.audio.MaxFileSizeBytes; limit > 0 && stat.Size() > limit {
		return nil, failure.New(failure.InvalidInput, "validate",
			fmt.Sprintf("file too large: %.2fGB > %.2fGB", gib(stat.Size()), gib(limit)))
	}

	info, err := p.Probe(ctx, path)
	if err != nil {
		return nil, failure.Wrap(failure.InvalidInput, "validate", "cannot read audio file", err)
	}

	if limit := float64(p.audio.MaxDurationSeconds); limit > 0 && info.Duration > limit {
		return nil, failure.New(failure.InvalidInput, "validate",
			fmt.Sprintf("audio too long: %.2fh > %.2fh", info.Duration/3600, limit/3600))
	}

	p.logger.Debug(ctx, "Validated %s: %.1fs, %d bytes, codec %s", path, info.Duration, stat.Size(), info.Codec)
	return info, nil
}

func gib(n int64) float64 {
	return float64(n) / (1 << 30)
}
