package numfmt

import "errors"

// ErrInvalidMarkers indicates a marker set that failed validation during load.
var ErrInvalidMarkers = errors.New("numfmt: invalid marker set")

// ErrUnsupportedFormat marks marker files with an extension the loader does not handle.
var ErrUnsupportedFormat = errors.New("numfmt: unsupported marker file format")
