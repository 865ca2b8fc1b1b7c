package convlog

import (
	"context"
	"os"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

// Beijing is the fixed UTC+8 zone used for day partitioning and timestamps.
var Beijing = time.FixedZone("CST", 8*60*60)

type Options struct {
	Dir           string
	Enabled       bool
	RetentionDays int
	// DeferPrune skips the prune New otherwise runs at RetentionDays.
	DeferPrune bool
	// Level applies to the side-channel text log.
	Level string
	// Console mirrors side-channel messages; may be nil.
	Console logger.Logger
	// Now overrides the clock for tests.
	Now func() time.Time
}

type implStore struct {
	dir           string
	enabled       bool
	retentionDays int
	now           func() time.Time
	side          *sideLog
}

// New creates the store and, unless DeferPrune is set, prunes it with the
// configured retention.
func New(opts Options) Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	console := opts.Console
	if console == nil {
		console = logger.Nop()
	}

	s := &implStore{
		dir:           opts.Dir,
		enabled:       opts.Enabled,
		retentionDays: opts.RetentionDays,
		now:           func() time.Time { return now().In(Beijing) },
	}
	if !s.enabled {
		return s
	}

	ctx := context.Background()
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		console.Error(ctx, "Failed to create conversation log dir %s: %v", s.dir, err)
	}
	s.side = newSideLog(s.dir, s.now, logger.ParseLevel(opts.Level), console)

	if !opts.DeferPrune {
		s.Prune(ctx, s.retentionDays)
	}
	return s
}

func (s *implStore) Enabled() bool {
	return s.enabled
}

func (s *implStore) RetentionDays() int {
	return s.retentionDays
}

func (s *implStore) Paths() (string, string) {
	day := s.now()
	return s.jsonPath(day), s.logPath(day)
}
