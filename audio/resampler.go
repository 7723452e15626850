// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundbank/utils"
)

// Resampler converts a Source to another sample rate with Catmull-Rom cubic
// interpolation over interleaved frames. Channel count is preserved. When
// downsampling, each incoming frame goes through a one-pole low-pass first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the current position; window[0] and
	// window[3] are the outer neighbours used by the spline.
	window [4][]float32
	filled [4]bool
	primed bool

	pos    float64 // fractional position between window[1] and window[2]
	srcBuf []float32
	eof    bool

	lowPass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowPass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from the source into dst, filtering it when
// downsampling. ok is false when no frame was available.
func (r *Resampler) readFrame(dst []float32) (ok bool, err error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		copy(dst, r.srcBuf[:n])
		if r.lowPass {
			for c := range r.channels {
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
				r.state[c] = dst[c]
			}
		}
		ok = true
	}

	if err == io.EOF {
		r.eof = true
		return ok, nil
	}
	if err != nil {
		return ok, fmt.Errorf("%w", err)
	}

	return ok, nil
}

// prime fills the four-frame window, duplicating the last frame when the
// source is shorter than four frames.
func (r *Resampler) prime() error {
	r.primed = true

	for i := range r.window {
		if r.eof {
			if i == 0 {
				return io.EOF
			}
			copy(r.window[i], r.window[i-1])
			r.filled[i] = true
			continue
		}

		if i == 0 {
			// Seed the filter with the first raw frame to avoid a ramp from zero.
			n, err := r.src.ReadSamples(r.srcBuf)
			if err != nil && err != io.EOF {
				return fmt.Errorf("%w", err)
			}
			r.eof = err == io.EOF
			if n == 0 {
				return io.EOF
			}
			copy(r.window[0], r.srcBuf[:n])
			copy(r.state, r.srcBuf[:n])
			r.filled[0] = true
			continue
		}

		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.filled[i] = true
	}

	return nil
}

// advance shifts the window left by one frame and reads a new right edge.
func (r *Resampler) advance() error {
	if r.eof && !r.filled[3] {
		return io.EOF
	}

	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.filled[:], r.filled[1:])
	r.window[3] = first
	r.filled[3] = false

	if r.eof {
		return nil
	}

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.filled[3] = ok

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of the channel count.
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
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			y0 := r.window[1][c]
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.filled[3] {
				y3 = r.window[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
