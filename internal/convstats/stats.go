// Package convstats aggregates conversation log records into summary statistics.
package convstats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

const unknownModel = "unknown"

type Stats struct {
	TotalConversations      int            `json:"total_conversations"`
	SuccessfulConversations int            `json:"successful_conversations"`
	FailedConversations     int            `json:"failed_conversations"`
	SuccessRate             float64        `json:"success_rate"`
	AverageProcessingTime   float64        `json:"average_processing_time"`
	TotalTokensUsed         int            `json:"total_tokens_used"`
	ModelsUsed              map[string]int `json:"models_used"`
	LoggingEnabled          bool           `json:"logging_enabled"`
}

// Compute derives Stats from records. It does not read or write anything.
func Compute(records []convlog.Record) Stats {
	stats := Stats{
		TotalConversations: len(records),
		ModelsUsed:         make(map[string]int),
		LoggingEnabled:     true,
	}

	var timeSum float64
	var timed int
	for _, rec := range records {
		if rec.Success {
			stats.SuccessfulConversations++
		}
		if rec.ProcessingTime > 0 {
			timeSum += rec.ProcessingTime
			timed++
		}

		model := rec.ModelName
		if model == "" {
			model = unknownModel
		}
		stats.ModelsUsed[model]++

		if rec.ResponseData != nil && rec.ResponseData.Usage != nil {
			stats.TotalTokensUsed += rec.ResponseData.Usage.TotalTokens
		}
	}
	stats.FailedConversations = stats.TotalConversations - stats.SuccessfulConversations

	if stats.TotalConversations > 0 {
		stats.SuccessRate = round2(float64(stats.SuccessfulConversations) / float64(stats.TotalConversations) * 100)
	}
	if timed > 0 {
		stats.AverageProcessingTime = round2(timeSum / float64(timed))
	}
	return stats
}

// FromStore computes Stats over every record in today's log.
func FromStore(ctx context.Context, store convlog.Store) Stats {
	if !store.Enabled() {
		stats := Compute(nil)
		stats.LoggingEnabled = false
		return stats
	}
	return Compute(store.Read(ctx, 0))
}

// Format renders stats as a human-readable summary.
func Format(s Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total conversations:     %d\n", s.TotalConversations)
	fmt.Fprintf(&b, "Successful:              %d\n", s.SuccessfulConversations)
	fmt.Fprintf(&b, "Failed:                  %d\n", s.FailedConversations)
	fmt.Fprintf(&b, "Success rate:            %.2f%%\n", s.SuccessRate)
	fmt.Fprintf(&b, "Average processing time: %.2fs\n", s.AverageProcessingTime)
	fmt.Fprintf(&b, "Total tokens used:       %d\n", s.TotalTokensUsed)
	if !s.LoggingEnabled {
		b.WriteString("Conversation logging is disabled\n")
	}

	if len(s.ModelsUsed) > 0 {
		b.WriteString("\nModels used:\n")
		models := make([]string, 0, len(s.ModelsUsed))
		for m := range s.ModelsUsed {
			models = append(models, m)
		}
		sort.Strings(models)
		for _, m := range models {
			fmt.Fprintf(&b, "  %s: %d\n", m, s.ModelsUsed[m])
		}
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
