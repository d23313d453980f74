package content

import "errors"

// ErrMalformedSnapshot indicates the snapshot is not a JSON object.
var ErrMalformedSnapshot = errors.New("content: malformed snapshot")
