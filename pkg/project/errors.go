package project

import "errors"

var (
	ErrNotFound     = errors.New("project: not found")
	ErrSaveFailed   = errors.New("project: failed to save")
	ErrLoadFailed   = errors.New("project: failed to load")
	ErrCorruptState = errors.New("project: stored state is corrupt")
)
