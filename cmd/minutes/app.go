package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
	"github.com/nguyentantai21042004/meeting-minutes/internal/document"
	"github.com/nguyentantai21042004/meeting-minutes/internal/llm"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/minutes"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
)

// app holds the process-wide dependencies, built once per command.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	exec    executor.Executor
	store   convlog.Store
	llm     llm.Client
	proc    processor.Processor
	writer  document.Writer
	minutes minutes.Orchestrator
}

func newApp(cfgPath string) (*app, error) {
	return buildApp(cfgPath, false)
}

// buildApp wires the dependencies. deferPrune leaves the conversation log
// untouched at startup so a command can prune with its own window.
func buildApp(cfgPath string, deferPrune bool) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewWithOptions(logger.Options{
		Level:      cfg.Logging.Level,
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	a.exec = executor.New()
	a.store = convlog.New(convlog.Options{
		Dir:           cfg.ConversationLog.Dir,
		Enabled:       cfg.ConversationLog.IsEnabled(),
		RetentionDays: cfg.ConversationLog.Retention(),
		DeferPrune:    deferPrune,
		Level:         cfg.ConversationLog.Level,
		Console:       log,
	})
	a.llm = llm.New(llm.Options{
		APIURL:       cfg.LLM.APIURL,
		Timeout:      time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		ProbeTimeout: time.Duration(cfg.LLM.ProbeTimeoutSeconds) * time.Second,
		Logger:       log,
	})
	a.proc = processor.New(cfg, a.exec, log)
	a.writer = document.New(cfg.Document)
	a.minutes = minutes.New(cfg, minutes.Deps{
		LLM:       a.llm,
		Store:     a.store,
		Processor: a.proc,
		Writer:    a.writer,
	}, log)

	return a, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Temp,
		cfg.Paths.Output,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// cleanupTemp empties the temp directory once a command is done with it.
func (a *app) cleanupTemp(ctx context.Context) {
	if err := processor.CleanupDir(a.cfg.Paths.Temp); err != nil {
		a.log.Warn(ctx, "Failed to clean temp dir %s: %v", a.cfg.Paths.Temp, err)
		return
	}
	a.log.Debug(ctx, "Cleaned temp dir %s", a.cfg.Paths.Temp)
}

// progressPrinter logs each state change with its progress.
func progressPrinter(ctx context.Context, log logger.Logger) minutes.Observer {
	return func(state minutes.State, progress float64) {
		log.Info(ctx, "[%3.0f%%] %s", progress*100, state)
	}
}
