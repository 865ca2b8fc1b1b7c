package convlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func seed(t *testing.T, path string, records []Record) {
	t.Helper()
	if err := storeRecords(path, records); err != nil {
		t.Fatal(err)
	}
}

func TestPruneRecords(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, Beijing)
	jsonPath := filepath.Join(dir, jsonFileName(now))

	seed(t, jsonPath, []Record{
		{SessionID: "old", Timestamp: now.AddDate(0, 0, -40).Format(TimestampLayout)},
		{SessionID: "recent", Timestamp: now.AddDate(0, 0, -1).Format(TimestampLayout)},
		{SessionID: "garbled", Timestamp: "yesterday-ish"},
		{SessionID: "python", Timestamp: "2024-06-29T08:00:00+08:00"},
	})

	store := newTestStore(t, dir, fixedClock(now))

	first := store.Prune(ctx, 30)
	if first.RecordsRemoved != 1 {
		t.Errorf("RecordsRemoved = %d, want 1", first.RecordsRemoved)
	}
	afterFirst := store.Read(ctx, 0)

	second := store.Prune(ctx, 30)
	if second.RecordsRemoved != 0 {
		t.Errorf("second prune removed %d records, want 0", second.RecordsRemoved)
	}
	afterSecond := store.Read(ctx, 0)

	if len(afterFirst) != 3 || len(afterSecond) != 3 {
		t.Fatalf("records after prune = %d / %d, want 3", len(afterFirst), len(afterSecond))
	}
	for i := range afterFirst {
		if afterFirst[i].SessionID != afterSecond[i].SessionID {
			t.Errorf("prune not idempotent at %d: %v vs %v", i, afterFirst[i].SessionID, afterSecond[i].SessionID)
		}
		if afterFirst[i].SessionID == "old" {
			t.Error("old record survived prune")
		}
	}
}

func TestPruneOnConstruction(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, Beijing)
	seed(t, filepath.Join(dir, jsonFileName(now)), []Record{
		{SessionID: "old", Timestamp: now.AddDate(0, 0, -8).Format(TimestampLayout)},
		{SessionID: "new", Timestamp: now.Format(TimestampLayout)},
	})

	store := New(Options{Dir: dir, Enabled: true, RetentionDays: 7, Now: fixedClock(now)})

	got := store.Read(context.Background(), 0)
	if len(got) != 1 || got[0].SessionID != "new" {
		t.Errorf("Read() after construction = %+v", got)
	}
}

func TestDeferPruneKeepsRecordsUntilAsked(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, Beijing)
	seed(t, filepath.Join(dir, jsonFileName(now)), []Record{
		{SessionID: "old", Timestamp: now.AddDate(0, 0, -40).Format(TimestampLayout)},
		{SessionID: "new", Timestamp: now.Format(TimestampLayout)},
	})

	store := New(Options{Dir: dir, Enabled: true, RetentionDays: 30, DeferPrune: true, Now: fixedClock(now)})
	if got := store.Read(context.Background(), 0); len(got) != 2 {
		t.Fatalf("Read() after deferred construction = %d records, want 2", len(got))
	}

	res := store.Prune(context.Background(), 60)
	if res.RecordsRemoved != 0 {
		t.Errorf("Prune(60) removed %d records, want 0", res.RecordsRemoved)
	}
	if got := store.Read(context.Background(), 0); len(got) != 2 {
		t.Errorf("Read() after Prune(60) = %d records, want 2", len(got))
	}
}

func TestPruneDeletesOldFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	now := time.Now().In(Beijing)
	store := newTestStore(t, dir, fixedClock(now))

	oldLog := filepath.Join(dir, "conversation_2020-01-01.log")
	oldJSON := filepath.Join(dir, "conversation_2020-01-01.json")
	freshLog := filepath.Join(dir, "conversation_2099-01-01.log")
	unrelated := filepath.Join(dir, "notes.log")
	for _, p := range []string{oldLog, oldJSON, freshLog, unrelated} {
		if err := os.WriteFile(p, []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := now.AddDate(0, 0, -60)
	for _, p := range []string{oldLog, oldJSON, unrelated} {
		if err := os.Chtimes(p, past, past); err != nil {
			t.Fatal(err)
		}
	}

	result := store.Prune(ctx, 30)
	if result.FilesRemoved != 2 {
		t.Errorf("FilesRemoved = %d, want 2", result.FilesRemoved)
	}

	for _, p := range []string{oldLog, oldJSON} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s should be deleted", filepath.Base(p))
		}
	}
	for _, p := range []string{freshLog, unrelated} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should be kept: %v", filepath.Base(p), err)
		}
	}
}

func TestPruneCorruptFileIsSkipped(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, Beijing)
	jsonPath := filepath.Join(dir, jsonFileName(now))
	if err := os.WriteFile(jsonPath, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	store := newTestStore(t, dir, fixedClock(now))
	if got := store.Prune(ctx, 1); got.RecordsRemoved != 0 {
		t.Errorf("RecordsRemoved = %d, want 0", got.RecordsRemoved)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil || string(data) != "garbage" {
		t.Errorf("corrupt file should be left untouched, got %q (%v)", data, err)
	}
}
