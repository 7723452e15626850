// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxPrealloc caps the initial capacity of a bounded read. The window end
// may lie far past the end of the stream.
const maxPrealloc = 1 << 20

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadMono tolerates
// before giving up on a source.
const maxEmptyReads = 64

// Window selects a time range of a stream. Offset is in seconds from the
// start; Duration is in seconds and a value <= 0 means "until the end".
type Window struct {
	Offset   float64
	Duration float64
}

// Bounded reports whether the window has an end.
func (w Window) Bounded() bool { return w.Duration > 0 }

// ReadMono drains src through a MonoMixer into a Buffer restricted to w.
//
// Frames before the window are read and dropped chunk by chunk, and reading
// stops as soon as the window is full, so only the requested region is ever
// held in memory. ReadMono does not close src.
func ReadMono(src Source, w Window) (*Buffer, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	skip := max(SecondsToFrames(w.Offset, rate), 0)
	limit := -1
	if w.Bounded() {
		// Same indices as slicing a buffer: [round(off*rate), round((off+dur)*rate)).
		limit = max(SecondsToFrames(w.Offset+w.Duration, rate)-skip, 0)
	}

	chunkSize := src.BufSize()
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	chunk := make([]float32, chunkSize)

	var out []float32
	if limit >= 0 {
		out = make([]float32, 0, min(limit, maxPrealloc))
	}

	mono := NewMonoMixer(src)
	empty := 0
	for limit < 0 || len(out) < limit {
		n, err := mono.ReadSamples(chunk)
		if n > 0 {
			empty = 0
			data := chunk[:n]
			if skip > 0 {
				dropped := min(skip, len(data))
				skip -= dropped
				data = data[dropped:]
			}
			if limit >= 0 && len(data) > limit-len(out) {
				data = data[:limit-len(out)]
			}
			out = append(out, data...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	return &Buffer{Samples: out, SampleRate: rate}, nil
}

// Resample converts buf to rate with the cubic Resampler and returns a new
// Buffer. A buffer already at rate is cloned.
func Resample(buf *Buffer, rate int) (*Buffer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}
	if buf.SampleRate == rate {
		return buf.Clone(), nil
	}
	if buf.Len() == 0 {
		return &Buffer{SampleRate: rate}, nil
	}

	return ReadMono(NewResampler(buf.Source(), rate), Window{})
}
