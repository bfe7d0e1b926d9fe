package testutil

import (
	"sync"

	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
)

// Recorder is a rules.Handler that remembers every environment it was
// called with and returns the configured result and error
type Recorder struct {
	Result rules.Result
	Err    error

	mu    sync.Mutex
	calls []pattern.Env
}

// Handle records env
func (r *Recorder) Handle(env pattern.Env) (rules.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, env)
	return r.Result, r.Err
}

// Calls returns a copy of the recorded environments
func (r *Recorder) Calls() []pattern.Env {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pattern.Env(nil), r.calls...)
}

// Called reports how many times the handler ran
func (r *Recorder) Called() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent environment
func (r *Recorder) Last() (pattern.Env, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return pattern.Env{}, false
	}
	return r.calls[len(r.calls)-1], true
}
