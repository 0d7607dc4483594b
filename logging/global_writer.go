package logging

import (
	"io"
	"os"
	"sync"
)

// stderrSink is where structured logs go when they are routed to stderr.
// Hosts that redirect stderr (or tests capturing it) swap the target.
type stderrSink struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *stderrSink) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

var sink = &stderrSink{w: os.Stderr}

// SetGlobalOutput redirects every logger writing to stderr. A nil writer
// restores os.Stderr.
func SetGlobalOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	sink.mu.Lock()
	sink.w = w
	sink.mu.Unlock()
}

// GetGlobalOutput returns the swappable stderr writer shared by all loggers.
func GetGlobalOutput() io.Writer {
	return sink
}
