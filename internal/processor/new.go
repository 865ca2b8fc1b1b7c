package processor

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
)

type implProcessor struct {
	audio    config.AudioConfig
	whisper  config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		audio:    cfg.Audio,
		whisper:  cfg.Whisper,
		tempDir:  cfg.Paths.Temp,
		executor: exec,
		logger:   log,
	}
}
