// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	"github.com/img2wav/img2wav/utils"
)

// Resampler converts src to a new sample rate using Catmull-Rom cubic
// interpolation over a sliding four-frame window. Channel count is
// preserved. When downsampling, a one-pole low-pass smooths the input to
// tame aliasing.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames advanced per output frame
	pos      float64 // fractional position between window[1] and window[2]

	// window[1] and window[2] bracket the interpolation point;
	// window[0] and window[3] supply the outer spline knots.
	window [4][]float32
	primed bool
	eof    bool
	pad    int // frames duplicated past the end of the source

	frame []float32 // scratch for single-frame reads

	smooth  bool
	lpAlpha float32
	lpState []float32
	lpInit  bool
}

func NewResampler(src Source, rate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(rate)

	r := &Resampler{
		src:      src,
		rate:     rate,
		channels: channels,
		step:     step,
		frame:    make([]float32, channels),
		smooth:   step > 1.0,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads exactly one source frame into dst, applying the
// low-pass smoother when downsampling. Returns io.EOF once the source is
// drained.
func (r *Resampler) readFrame(dst []float32) error {
	if r.eof {
		return io.EOF
	}

	n, err := r.src.ReadSamples(r.frame)
	if n > 0 {
		copy(dst, r.frame[:n])

		if r.smooth {
			if !r.lpInit {
				copy(r.lpState, dst[:r.channels])
				r.lpInit = true
			}
			for c := 0; c < r.channels; c++ {
				dst[c] = r.lpAlpha*dst[c] + (1-r.lpAlpha)*r.lpState[c]
				r.lpState[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return io.EOF
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if n == 0 {
		r.eof = true
		return io.EOF
	}

	return nil
}

// prime fills the four-frame window from the head of the stream,
// duplicating edge frames where the source is too short.
func (r *Resampler) prime() error {
	if err := r.readFrame(r.window[1]); err != nil {
		return err
	}
	copy(r.window[0], r.window[1])

	if err := r.readFrame(r.window[2]); err != nil {
		if err != io.EOF {
			return err
		}
		copy(r.window[2], r.window[1])
		r.pad++
	}
	if err := r.readFrame(r.window[3]); err != nil {
		if err != io.EOF {
			return err
		}
		copy(r.window[3], r.window[2])
	}

	r.primed = true
	return nil
}

// advance slides the window one source frame forward. After the source
// ends, the last frame is held once so interpolation can finish; the
// second miss is io.EOF.
func (r *Resampler) advance() error {
	recycled := r.window[0]
	r.window[0], r.window[1], r.window[2], r.window[3] =
		r.window[1], r.window[2], r.window[3], recycled

	err := r.readFrame(r.window[3])
	if err == io.EOF {
		r.pad++
		if r.pad >= 2 {
			return io.EOF
		}
		copy(r.window[3], r.window[2])
		return nil
	}

	return err
}

// ReadSamples produces interleaved samples at the target rate. len(dst)
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos--
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		out := dst[written*r.channels:]
		x := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			out[c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
