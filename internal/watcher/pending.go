package watcher

import (
	"sync"
	"time"
)

// pendingSet holds one settle timer per path that is still being written.
type pendingSet struct {
	mu     sync.Mutex
	timers map[string]*pending
}

type pending struct {
	timer *time.Timer
}

func newPendingSet() *pendingSet {
	return &pendingSet{timers: make(map[string]*pending)}
}

// touch (re)arms the timer for path; fire runs once the path settles.
func (p *pendingSet) touch(path string, after time.Duration, fire func(string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touchLocked(path, after, fire)
}

func (p *pendingSet) touchLocked(path string, after time.Duration, fire func(string)) {
	if e, ok := p.timers[path]; ok && e.timer.Stop() {
		e.timer.Reset(after)
		return
	}

	// A timer that already fired but whose callback is waiting on the lock
	// is superseded here; the callback sees it is no longer current and exits.
	e := &pending{}
	e.timer = time.AfterFunc(after, func() {
		p.mu.Lock()
		if p.timers[path] != e {
			p.mu.Unlock()
			return
		}
		delete(p.timers, path)
		p.mu.Unlock()
		fire(path)
	})
	p.timers[path] = e
}

func (p *pendingSet) stopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for path, e := range p.timers {
		e.timer.Stop()
		delete(p.timers, path)
	}
}
