package logview

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

func (v *implViewer) Open(ctx context.Context, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return v.load(v.store.Read(ctx, limit))
}

func (v *implViewer) OpenDay(ctx context.Context, day time.Time, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return v.load(v.store.ReadDay(ctx, day, limit))
}

func (v *implViewer) load(records []convlog.Record) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = records
	return len(records)
}

func (v *implViewer) Records() []convlog.Record {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]convlog.Record, len(v.records))
	copy(out, v.records)
	return out
}

func (v *implViewer) Filter(term string) []convlog.Record {
	term = strings.ToLower(strings.TrimSpace(term))

	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]convlog.Record, 0, len(v.records))
	for _, r := range v.records {
		if term == "" || matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r convlog.Record, term string) bool {
	for _, field := range []string{r.SessionID, r.ModelName, r.MeetingInfo, r.Error} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (v *implViewer) Find(sessionID string) (convlog.Record, bool) {
	sessionID = strings.TrimSpace(sessionID)
	digits := digitsOnly(sessionID)

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, r := range v.records {
		if r.SessionID == sessionID {
			return r, true
		}
	}
	if digits == "" {
		return convlog.Record{}, false
	}
	for _, r := range v.records {
		if digitsOnly(r.SessionID) == digits {
			return r, true
		}
	}
	return convlog.Record{}, false
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
