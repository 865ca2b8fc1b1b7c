package logview

import (
	"sync"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

type implViewer struct {
	store convlog.Store

	mu      sync.RWMutex
	records []convlog.Record
}

// New creates a Viewer reading from store.
func New(store convlog.Store) Viewer {
	return &implViewer{store: store}
}
