package convlog

import (
	"context"
	"time"
)

// Store is the append-only, day-partitioned conversation log.
// No method returns an error: persistence failures are reported on the
// side-channel text log and surface as empty results.
type Store interface {
	// Append records one completion attempt and returns its session id,
	// or "" when logging is disabled.
	Append(ctx context.Context, e Entry) string
	// Read returns at most limit records of today's file, newest first.
	// A limit <= 0 means no limit.
	Read(ctx context.Context, limit int) []Record
	// ReadDay is Read for an arbitrary calendar day.
	ReadDay(ctx context.Context, day time.Time, limit int) []Record
	// Prune drops records and log files older than retentionDays.
	Prune(ctx context.Context, retentionDays int) PruneResult
	// Paths returns today's JSON and text log paths.
	Paths() (jsonPath, logPath string)
	Enabled() bool
	RetentionDays() int
}
