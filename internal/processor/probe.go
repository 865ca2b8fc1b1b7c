package processor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

type probeOutput struct {
	Format struct {
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		BitRate    string `json:"bit_rate"`
		FormatName string `json:"format_name"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
}

// Probe runs ffprobe against path.
func (p *implProcessor) Probe(ctx context.Context, path string) (*AudioInfo, error) {
	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	out, err := p.executor.Execute(ctx, p.audio.FFprobePath, args...)
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	var probe probeOutput
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return nil, fmt.Errorf("decode ffprobe output: %w", err)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return nil, fmt.Errorf("parse duration %q: %w", probe.Format.Duration, err)
	}

	info := &AudioInfo{
		Duration: duration,
		Format:   probe.Format.FormatName,
	}
	info.Size, _ = strconv.ParseInt(probe.Format.Size, 10, 64)
	info.BitRate, _ = strconv.ParseInt(probe.Format.BitRate, 10, 64)

	// Prefer the first audio stream; video containers list video first.
	for _, s := range probe.Streams {
		if s.CodecType == "audio" {
			info.Codec = s.CodecName
			info.SampleRate, _ = strconv.Atoi(s.SampleRate)
			info.Channels = s.Channels
			break
		}
	}

	return info, nil
}
