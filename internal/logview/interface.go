package logview

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

// DefaultLimit bounds how many records Open loads.
const DefaultLimit = 1000

// Viewer is a read-only snapshot of the conversation log. Filtering scans
// the snapshot, never the file.
type Viewer interface {
	// Open loads today's newest records; limit <= 0 means DefaultLimit.
	Open(ctx context.Context, limit int) int
	// OpenDay is Open for another calendar day.
	OpenDay(ctx context.Context, day time.Time, limit int) int
	Records() []convlog.Record
	// Filter matches term case-insensitively against session id, model,
	// meeting info and error. An empty term matches everything.
	Filter(term string) []convlog.Record
	// Find looks a session up by exact id or by its digits alone.
	Find(sessionID string) (convlog.Record, bool)
	// Export writes the loaded records to path; the extension picks the format.
	Export(path string) error
}
