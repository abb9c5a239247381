// Package session holds the process-wide "session expired" state. The HTTP
// adapter is the only writer; the top-level guard is the only reader. The
// expiry is delivered both as a flag and as a closed channel so a blocking
// shell can select on it.
package session

import "sync"

type Watcher struct {
	mu      sync.Mutex
	expired bool
	done    chan struct{}
}

func NewWatcher() *Watcher {
	return &Watcher{done: make(chan struct{})}
}

// Expire marks the session as expired. Safe to call more than once; the
// channel is closed exactly once.
func (w *Watcher) Expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return
	}
	w.expired = true
	close(w.done)
}

func (w *Watcher) Expired() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.expired
}

// Done is closed when the session expires.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}
