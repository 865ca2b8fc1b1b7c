package document

import (
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
)

const (
	minutesPrefix  = "会议纪要"
	completePrefix = "会议完整信息"
	fileStamp      = "20060102_150405"
)

type implWriter struct {
	font        string
	titleSize   uint64
	headingSize uint64
	bodySize    uint64
}

// New creates a Writer using the configured font and sizes.
func New(cfg config.DocumentConfig) Writer {
	return &implWriter{
		font:        cfg.Font,
		titleSize:   uint64(cfg.TitleSize),
		headingSize: uint64(cfg.HeadingSize),
		bodySize:    uint64(cfg.BodySize),
	}
}

// MinutesFileName is the default name of a minutes document generated at t.
func MinutesFileName(t time.Time) string {
	return minutesPrefix + "_" + t.Format(fileStamp) + ".docx"
}

// CompleteFileName is the default name of a complete-info document generated at t.
func CompleteFileName(t time.Time) string {
	return completePrefix + "_" + t.Format(fileStamp) + ".docx"
}
