package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/project"
)

// Session is the newsletter being edited.
type Session struct {
	mu    sync.RWMutex
	model content.Newsletter
	saver *project.Autosaver
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithAutosaver schedules a save after every change.
func WithAutosaver(a *project.Autosaver) SessionOption {
	return func(s *Session) {
		s.saver = a
	}
}

// NewSession starts editing initial.
func NewSession(initial content.Newsletter, opts ...SessionOption) *Session {
	s := &Session{model: content.Normalize(initial)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RestoreSession resumes the current snapshot of store, or starts from the
// default newsletter when nothing was saved yet.
func RestoreSession(ctx context.Context, store project.Store, opts ...SessionOption) (*Session, error) {
	p, err := store.Current(ctx)
	switch {
	case errors.Is(err, project.ErrNotFound):
		return NewSession(content.Default(), opts...), nil
	case err != nil:
		return nil, err
	}
	return NewSession(p.State, opts...), nil
}

// Snapshot returns a copy of the model.
func (s *Session) Snapshot() content.Newsletter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model.Clone()
}

// Apply replaces the model with fn(model) and returns a copy of the result.
func (s *Session) Apply(fn func(content.Newsletter) content.Newsletter) content.Newsletter {
	s.mu.Lock()
	s.model = fn(s.model)
	out := s.model.Clone()
	s.mu.Unlock()

	if s.saver != nil {
		s.saver.Touch(out)
	}
	return out
}

// Replace swaps in a new model, as when a project is loaded.
func (s *Session) Replace(n content.Newsletter) content.Newsletter {
	return s.Apply(func(content.Newsletter) content.Newsletter {
		return content.Normalize(n)
	})
}

// SaveStatus reports the autosave state, idle without an autosaver.
func (s *Session) SaveStatus() project.Status {
	if s.saver == nil {
		return project.StatusIdle
	}
	return s.saver.Status()
}

// Autosaver returns the autosaver or nil.
func (s *Session) Autosaver() *project.Autosaver {
	return s.saver
}
