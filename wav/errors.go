package wav

import "errors"

// Configuration errors, reported before any byte touches the destination.
var (
	ErrNoData            = errors.New("no sample data")
	ErrChannelMismatch   = errors.New("buffer channel count does not match config")
	ErrShortChannel      = errors.New("channel buffer shorter than sample count")
	ErrInvalidChannels   = errors.New("channel count must be greater than zero")
	ErrInvalidSamples    = errors.New("sample count must be greater than zero")
	ErrInvalidSampleRate = errors.New("sample rate must be greater than zero")
	ErrInvalidBitDepth   = errors.New("bit depth must be 8, 16, 24 or 32")
)

// Format errors, reported while parsing a container.
var (
	ErrShortHeader   = errors.New("header shorter than 44 bytes")
	ErrBadRIFFChunk  = errors.New("invalid RIFF chunk")
	ErrBadWAVEMarker = errors.New("invalid WAVE marker")
	ErrBadFmtChunk   = errors.New("invalid fmt chunk")
	ErrBadDataChunk  = errors.New("invalid data chunk")
	ErrTruncatedData = errors.New("data chunk shorter than declared sample count")
)
