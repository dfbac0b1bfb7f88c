package decode

import "errors"

var (
	ErrUnknownFormat        = errors.New("unknown audio format")
	ErrNotAiffFile          = errors.New("not an AIFF file")
	ErrUnsupportedAiffDepth = errors.New("unsupported AIFF bit depth")
)
