package helpdoc

import "errors"

var (
	// ErrPageNotFound indicates there is no page with the given name.
	ErrPageNotFound = errors.New("helpdoc: page not found")

	// ErrInvalidFrontmatter indicates the YAML frontmatter could not be parsed.
	ErrInvalidFrontmatter = errors.New("helpdoc: invalid frontmatter")

	// ErrRenderFailed indicates a template or markdown conversion error.
	ErrRenderFailed = errors.New("helpdoc: failed to render page")
)
