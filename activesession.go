package main

import (
	"sync"
	"time"
)

// ActiveSession is the stopwatch backing the "log what you just did" flow.
// It only tracks elapsed time client-side style; nothing is persisted until
// the user submits the finished session through the sessions API.
//
// Paused state is modeled as running=false with elapsed>0; Reset clears both.
type ActiveSession struct {
	mu sync.Mutex

	now func() time.Time

	running     bool
	elapsed     time.Duration
	startedAt   time.Time
	ProjectName string
	Intention   string
}

func NewActiveSession() *ActiveSession {
	return &ActiveSession{now: time.Now}
}

// Start begins a fresh stopwatch, discarding any previous state.
func (a *ActiveSession) Start(projectName, intention string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = true
	a.elapsed = 0
	a.startedAt = a.now()
	a.ProjectName = projectName
	a.Intention = intention
}

// Pause freezes the stopwatch, folding the live span into elapsed.
func (a *ActiveSession) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.elapsed += a.now().Sub(a.startedAt)
	a.running = false
}

// Resume continues a paused stopwatch. It is a no-op when already running
// or when there is nothing to resume.
func (a *ActiveSession) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running || a.elapsed <= 0 {
		return
	}
	// Back-date the start so Elapsed stays continuous across the pause.
	a.startedAt = a.now().Add(-a.elapsed)
	a.elapsed = 0
	a.running = true
}

// Reset discards the stopwatch entirely.
func (a *ActiveSession) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = false
	a.elapsed = 0
	a.startedAt = time.Time{}
	a.ProjectName = ""
	a.Intention = ""
}

// Elapsed reports total tracked time, including the live span when running.
func (a *ActiveSession) Elapsed() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return a.now().Sub(a.startedAt)
	}
	return a.elapsed
}

func (a *ActiveSession) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
