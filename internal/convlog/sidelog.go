package convlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

// dailyFile is an io.Writer appending to the text log of the current day.
type dailyFile struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	path := filepath.Join(d.dir, logFileName(d.now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	n, werr := f.Write(p)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return n, werr
}

// sideLog is the human-readable companion of the JSON store.
type sideLog struct {
	file    *slog.Logger
	console logger.Logger
}

func newSideLog(dir string, now func() time.Time, level slog.Level, console logger.Logger) *sideLog {
	w := &dailyFile{dir: dir, now: now}
	return &sideLog{
		file:    slog.New(logger.NewTextHandler(w, level)),
		console: console,
	}
}

func (l *sideLog) log(ctx context.Context, level slog.Level, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.file.Log(ctx, level, msg)

	switch level {
	case slog.LevelDebug:
		l.console.Debug(ctx, "%s", msg)
	case slog.LevelWarn:
		l.console.Warn(ctx, "%s", msg)
	case slog.LevelError:
		l.console.Error(ctx, "%s", msg)
	default:
		l.console.Info(ctx, "%s", msg)
	}
}

func (s *implStore) infof(ctx context.Context, msg string, args ...interface{}) {
	if s.side != nil {
		s.side.log(ctx, slog.LevelInfo, msg, args...)
	}
}

func (s *implStore) errorf(ctx context.Context, msg string, args ...interface{}) {
	if s.side != nil {
		s.side.log(ctx, slog.LevelError, msg, args...)
	}
}
