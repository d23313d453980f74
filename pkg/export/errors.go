package export

import "errors"

var (
	// ErrNoContent indicates an empty HTML document was passed in.
	ErrNoContent = errors.New("export: empty document")

	// ErrInvalidBoundary indicates the multipart boundary was rejected.
	ErrInvalidBoundary = errors.New("export: invalid boundary")

	// ErrEncodeFailed indicates the container could not be written.
	ErrEncodeFailed = errors.New("export: failed to encode")

	// ErrUnknownKind indicates an unsupported download format.
	ErrUnknownKind = errors.New("export: unknown format")
)
