package convlog

import "sync"

// fileLocks serialises read-modify-write cycles per JSON file path,
// shared by every Store in the process.
var fileLocks sync.Map

func lockFor(path string) *sync.Mutex {
	mu, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
