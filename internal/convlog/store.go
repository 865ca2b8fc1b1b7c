package convlog

import (
	"context"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/nguyentantai21042004/meeting-minutes/internal/failure"
)

// TimestampLayout is fixed-width so that string order equals time order.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// SessionID formats t as YYYYMMDD_HHMMSS_mmm in Beijing time.
func SessionID(t time.Time) string {
	t = t.In(Beijing)
	return fmt.Sprintf("%s_%03d", t.Format("20060102_150405"), t.Nanosecond()/int(time.Millisecond))
}

func (s *implStore) Append(ctx context.Context, e Entry) string {
	if !s.enabled {
		return ""
	}

	now := s.now()
	rec := buildRecord(now, e)
	path := s.jsonPath(now)

	mu := lockFor(path)
	mu.Lock()
	records, err := loadRecords(path)
	if err != nil {
		s.reportPersistence(ctx, "append", "conversation log unreadable, starting a new file", err)
		records = []Record{}
	}
	records = append(records, rec)
	err = storeRecords(path, records)
	mu.Unlock()

	if err != nil {
		s.reportPersistence(ctx, "append", "save conversation log failed", err)
	}

	if rec.Success {
		s.infof(ctx, "Session %s - completion succeeded - response length: %d chars - processing time: %.2fs",
			rec.SessionID, rec.ResponseData.ResponseLength, rec.ProcessingTime)
	} else {
		s.errorf(ctx, "Session %s - completion failed: %s", rec.SessionID, rec.Error)
	}

	return rec.SessionID
}

func (s *implStore) Read(ctx context.Context, limit int) []Record {
	return s.ReadDay(ctx, s.now(), limit)
}

func (s *implStore) ReadDay(ctx context.Context, day time.Time, limit int) []Record {
	if !s.enabled {
		return []Record{}
	}

	path := s.jsonPath(day)
	mu := lockFor(path)
	mu.Lock()
	records, err := loadRecords(path)
	mu.Unlock()

	if err != nil {
		s.reportPersistence(ctx, "read", "read conversation history failed", err)
		return []Record{}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

func (s *implStore) reportPersistence(ctx context.Context, op, msg string, err error) {
	s.errorf(ctx, "%v", failure.Wrap(failure.Persistence, op, msg, err))
}

func buildRecord(now time.Time, e Entry) Record {
	rec := Record{
		SessionID:           SessionID(now),
		Timestamp:           now.In(Beijing).Format(TimestampLayout),
		ModelName:           e.ModelName,
		APIURL:              e.APIURL,
		MeetingInfo:         e.MeetingInfo,
		TranscriptionLength: utf8.RuneCountInString(e.Transcription),
		CustomPrompt:        e.CustomPrompt,
		RequestData:         e.Request,
		ProcessingTime:      e.ProcessingTime,
		Success:             e.Error == "",
	}

	if !rec.Success {
		rec.Error = e.Error
		return rec
	}

	resp := ResponseData{StatusCode: 200}
	if e.Response != nil {
		resp = *e.Response
		if resp.StatusCode == 0 {
			resp.StatusCode = 200
		}
	}
	if resp.Choices == nil {
		resp.Choices = []Choice{}
	}
	resp.ResponseLength = utf8.RuneCountInString(resp.Content())
	rec.ResponseData = &resp
	return rec
}
