package project

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/newsletter/pkg/content"
)

// DefaultDelay is the quiet period after the last edit before a save.
const DefaultDelay = 800 * time.Millisecond

// Status reports the autosaver state shown next to the editor.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusSaving Status = "saving"
	StatusSaved  Status = "saved"
)

// AutosaverOption configures an Autosaver.
type AutosaverOption func(*Autosaver)

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) AutosaverOption {
	return func(a *Autosaver) {
		if d > 0 {
			a.delay = d
		}
	}
}

// WithClock overrides the time source used for SavedAt.
func WithClock(now func() time.Time) AutosaverOption {
	return func(a *Autosaver) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger sets the logger used to report failed background saves.
func WithLogger(log *slog.Logger) AutosaverOption {
	return func(a *Autosaver) {
		if log != nil {
			a.log = log
		}
	}
}

// WithSaveTimeout bounds each background save.
func WithSaveTimeout(d time.Duration) AutosaverOption {
	return func(a *Autosaver) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// Autosaver coalesces edits and writes the latest snapshot to a Store once
// no edit arrived for the configured delay.
type Autosaver struct {
	store   Store
	delay   time.Duration
	timeout time.Duration
	now     func() time.Time
	log     *slog.Logger

	saveMu sync.Mutex // serialises writes so they land in edit order

	mu      sync.Mutex
	timer   *time.Timer
	pending *content.Newsletter
	status  Status
	last    Project
	lastErr error
	closed  bool
}

// NewAutosaver returns an idle autosaver writing to store.
func NewAutosaver(store Store, opts ...AutosaverOption) *Autosaver {
	a := &Autosaver{
		store:   store,
		delay:   DefaultDelay,
		timeout: 5 * time.Second,
		now:     time.Now,
		log:     slog.New(slog.DiscardHandler),
		status:  StatusIdle,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Touch records n as the latest state and restarts the delay.
// After Close it does nothing.
func (a *Autosaver) Touch(n content.Newsletter) {
	snapshot := n.Clone()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.pending = &snapshot
	a.status = StatusSaving
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// Flush writes the pending snapshot now. It returns nil when nothing is pending.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	a.mu.Lock()
	n := a.pending
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	if n == nil {
		return nil
	}

	p := New(*n, a.now())
	err := a.store.SaveCurrent(ctx, p)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.lastErr = err
	switch {
	case a.pending != nil:
		// edited again while writing; the next save is already scheduled
	case err != nil:
		a.status = StatusIdle
	default:
		a.status = StatusSaved
	}
	if err == nil {
		a.last = p
	}
	return err
}

// Close flushes pending work and stops accepting edits.
func (a *Autosaver) Close(ctx context.Context) error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	return a.Flush(ctx)
}

// Status returns the current state.
func (a *Autosaver) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Err returns the error of the most recent save, if any.
func (a *Autosaver) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// LastSaved returns the most recently written project and whether one exists.
func (a *Autosaver) LastSaved() (Project, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last, !a.last.SavedAt.IsZero()
}

func (a *Autosaver) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.Flush(ctx); err != nil {
		a.log.ErrorContext(ctx, "autosave failed", slog.String("error", err.Error()))
	}
}
