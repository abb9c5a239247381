// Package notify surfaces transient mutation outcomes to the operator. It is
// the toast bar of the web UI, reduced to its contract.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ZapNotifier writes notifications through the application logger.
type ZapNotifier struct {
	log *zap.SugaredLogger
}

func NewZapNotifier(log *zap.SugaredLogger) *ZapNotifier {
	return &ZapNotifier{log: log}
}

func (n *ZapNotifier) Success(msg string) { n.log.Infow(msg, "kind", "success") }
func (n *ZapNotifier) Error(msg string)   { n.log.Warnw(msg, "kind", "error") }

// Recorder collects notifications for tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}

func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.Successes); n > 0 {
		return r.Successes[n-1]
	}
	return ""
}
