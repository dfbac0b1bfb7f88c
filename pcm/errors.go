package pcm

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrEmptySource    = errors.New("source produced no frames")
	ErrNoChannels     = errors.New("source reports no channels")
)
