package convlog

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

func (s *implStore) Prune(ctx context.Context, retentionDays int) PruneResult {
	var result PruneResult
	if !s.enabled {
		return result
	}
	if retentionDays < 0 {
		retentionDays = 0
	}

	now := s.now()
	cutoff := now.Add(-time.Duration(retentionDays) * 24 * time.Hour)
	current := s.jsonPath(now)

	result.RecordsRemoved = s.pruneRecords(ctx, current, cutoff)
	result.FilesRemoved += s.pruneFiles(ctx, filePrefix+"*.log", cutoff, "")
	result.FilesRemoved += s.pruneFiles(ctx, filePrefix+"*.json", cutoff, current)

	s.infof(ctx, "Pruned conversation logs older than %d days: %d records, %d files",
		retentionDays, result.RecordsRemoved, result.FilesRemoved)
	return result
}

// pruneRecords drops records older than cutoff from path. Records whose
// timestamp does not parse are kept.
func (s *implStore) pruneRecords(ctx context.Context, path string, cutoff time.Time) int {
	mu := lockFor(path)
	mu.Lock()
	defer mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		return 0
	}

	records, err := loadRecords(path)
	if err != nil {
		s.reportPersistence(ctx, "prune", "load conversation log for pruning failed", err)
		return 0
	}

	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
		if err != nil || !ts.Before(cutoff) {
			kept = append(kept, rec)
		}
	}

	removed := len(records) - len(kept)
	if removed == 0 {
		return 0
	}
	if err := storeRecords(path, kept); err != nil {
		s.reportPersistence(ctx, "prune", "rewrite conversation log failed", err)
		return 0
	}
	return removed
}

// pruneFiles deletes files matching pattern whose mtime predates cutoff.
func (s *implStore) pruneFiles(ctx context.Context, pattern string, cutoff time.Time, skip string) int {
	matches, err := filepath.Glob(filepath.Join(s.dir, pattern))
	if err != nil {
		s.reportPersistence(ctx, "prune", "list conversation log files failed", err)
		return 0
	}

	removed := 0
	for _, path := range matches {
		if path == skip {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}

		mu := lockFor(path)
		mu.Lock()
		err = os.Remove(path)
		mu.Unlock()

		if err != nil {
			s.reportPersistence(ctx, "prune", "remove "+filepath.Base(path)+" failed", err)
			continue
		}
		removed++
	}
	return removed
}
