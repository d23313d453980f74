package project

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/newsletter/pkg/content"
)

// MaxRecent is the length of the recent projects list.
const MaxRecent = 5

// Project is a saved newsletter snapshot.
type Project struct {
	ID      uuid.UUID          `json:"id"`
	Name    string             `json:"name"`
	SavedAt time.Time          `json:"savedAt"`
	State   content.Newsletter `json:"state"`
}

// New wraps a snapshot of n, named after its issue number.
func New(n content.Newsletter, savedAt time.Time) Project {
	return Project{
		ID:      uuid.New(),
		Name:    n.Name(),
		SavedAt: savedAt.UTC(),
		State:   n.Clone(),
	}
}

// Store persists the current snapshot and the recent projects list.
type Store interface {
	// SaveCurrent replaces the current snapshot and records p in the recent list.
	SaveCurrent(ctx context.Context, p Project) error
	// Current returns the current snapshot or ErrNotFound.
	Current(ctx context.Context) (Project, error)
	// ClearCurrent forgets the current snapshot. The recent list is kept.
	ClearCurrent(ctx context.Context) error
	// Recent returns the recent list, newest first.
	Recent(ctx context.Context) ([]Project, error)
}

// Remember returns list with p prepended. An older entry with the same name
// is dropped and the result is capped at MaxRecent. list is not modified.
func Remember(list []Project, p Project) []Project {
	out := make([]Project, 0, min(len(list)+1, MaxRecent))
	out = append(out, p)
	for _, e := range list {
		if len(out) == MaxRecent {
			break
		}
		if e.Name == p.Name {
			continue
		}
		out = append(out, e)
	}
	return out
}

// decodeProject restores a stored document. The embedded state passes
// through content.Import so that documents written by older versions keep
// loading.
func decodeProject(data []byte) (Project, error) {
	var raw struct {
		ID      uuid.UUID       `json:"id"`
		Name    string          `json:"name"`
		SavedAt time.Time       `json:"savedAt"`
		State   json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Project{}, errors.Join(ErrCorruptState, err)
	}
	state, err := content.Import(raw.State)
	if err != nil {
		return Project{}, errors.Join(ErrCorruptState, err)
	}
	return Project{ID: raw.ID, Name: raw.Name, SavedAt: raw.SavedAt, State: state}, nil
}

func decodeProjects(data []byte) ([]Project, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.Join(ErrCorruptState, err)
	}
	out := make([]Project, 0, len(raws))
	for _, r := range raws {
		p, err := decodeProject(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
