package convstats

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	if s.TotalConversations != 0 || s.SuccessRate != 0 || s.AverageProcessingTime != 0 || s.TotalTokensUsed != 0 {
		t.Errorf("Compute(nil) = %+v, want zeros", s)
	}
	if s.ModelsUsed == nil {
		t.Error("ModelsUsed should be an empty map, not nil")
	}
}

func TestCompute(t *testing.T) {
	records := []convlog.Record{
		{ModelName: "qwen", Success: true, ProcessingTime: 2.0,
			ResponseData: &convlog.ResponseData{Usage: &convlog.Usage{TotalTokens: 100}}},
		{ModelName: "qwen", Success: true, ProcessingTime: 3.0,
			ResponseData: &convlog.ResponseData{}},
		{ModelName: "llama", Success: false, ProcessingTime: 0, Error: "timeout"},
		{ModelName: "", Success: true, ProcessingTime: 1.3333,
			ResponseData: &convlog.ResponseData{Usage: &convlog.Usage{TotalTokens: 42}}},
	}

	s := Compute(records)

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"total", s.TotalConversations, 4},
		{"successful", s.SuccessfulConversations, 3},
		{"failed", s.FailedConversations, 1},
		{"success rate", s.SuccessRate, 75.0},
		{"average time excludes zero", s.AverageProcessingTime, 2.11},
		{"tokens", s.TotalTokensUsed, 142},
		{"qwen count", s.ModelsUsed["qwen"], 2},
		{"llama count", s.ModelsUsed["llama"], 1},
		{"unknown count", s.ModelsUsed["unknown"], 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestComputeCountsAddUp(t *testing.T) {
	for n := 0; n < 10; n++ {
		records := make([]convlog.Record, n)
		for i := range records {
			records[i].Success = i%3 == 0
		}
		s := Compute(records)
		if s.SuccessfulConversations+s.FailedConversations != s.TotalConversations {
			t.Errorf("n=%d: %d + %d != %d", n, s.SuccessfulConversations, s.FailedConversations, s.TotalConversations)
		}
	}
}

func TestSuccessRateRounding(t *testing.T) {
	records := []convlog.Record{{Success: true}, {Success: false}, {Success: false}}
	if s := Compute(records); s.SuccessRate != 33.33 {
		t.Errorf("SuccessRate = %v, want 33.33", s.SuccessRate)
	}
}

func TestFromStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, convlog.Beijing)
	store := convlog.New(convlog.Options{
		Dir:           t.TempDir(),
		Enabled:       true,
		RetentionDays: 30,
		Now:           func() time.Time { return now },
	})
	store.Append(ctx, convlog.Entry{ModelName: "qwen", ProcessingTime: 1,
		Response: &convlog.ResponseData{Usage: &convlog.Usage{TotalTokens: 7}}})
	store.Append(ctx, convlog.Entry{ModelName: "qwen", Error: "boom"})

	s := FromStore(ctx, store)
	if s.TotalConversations != 2 || s.TotalTokensUsed != 7 || s.SuccessRate != 50 || !s.LoggingEnabled {
		t.Errorf("FromStore() = %+v", s)
	}

	disabled := convlog.New(convlog.Options{Enabled: false})
	if s := FromStore(ctx, disabled); s.LoggingEnabled || s.TotalConversations != 0 {
		t.Errorf("FromStore(disabled) = %+v", s)
	}
}

func TestFromStoreDuringAppends(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, convlog.Beijing)
	store := convlog.New(convlog.Options{
		Dir:           t.TempDir(),
		Enabled:       true,
		RetentionDays: 30,
		Now:           func() time.Time { return now },
	})

	const writers = 4
	const perWriter = 10
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				entry := convlog.Entry{ModelName: "qwen", ProcessingTime: 1}
				if i%2 == w%2 {
					entry.Error = "boom"
				} else {
					entry.Response = &convlog.ResponseData{Usage: &convlog.Usage{TotalTokens: 1}}
				}
				store.Append(ctx, entry)
			}
		}(w)
	}

	errs := make(chan string, writers)
	var readers sync.WaitGroup
	for r := 0; r < writers; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			last := 0
			for i := 0; i < 20; i++ {
				s := FromStore(ctx, store)
				if s.SuccessfulConversations+s.FailedConversations != s.TotalConversations {
					errs <- "successful + failed != total"
					return
				}
				if s.TotalConversations < last || s.TotalConversations > writers*perWriter {
					errs <- "total out of range"
					return
				}
				last = s.TotalConversations
			}
		}()
	}

	wg.Wait()
	readers.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}

	s := FromStore(ctx, store)
	if s.TotalConversations != writers*perWriter || s.FailedConversations != writers*perWriter/2 {
		t.Errorf("FromStore() after appends = %+v", s)
	}
}

func TestFormat(t *testing.T) {
	out := Format(Stats{TotalConversations: 2, SuccessfulConversations: 1, FailedConversations: 1,
		SuccessRate: 50, ModelsUsed: map[string]int{"qwen": 2}, LoggingEnabled: true})

	for _, want := range []string{"Total conversations:     2", "Success rate:            50.00%", "qwen: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}
