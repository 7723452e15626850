// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Buffer is a decoded mono recording: float32 samples in [-1, 1] at
// SampleRate Hz. Every transform in this module works on a Buffer; bit depth
// only exists at the file and external-tool boundaries.
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// NewBuffer wraps samples without copying them.
func NewBuffer(samples []float32, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return &Buffer{Samples: samples, SampleRate: sampleRate}, nil
}

// Len is the number of samples.
func (b *Buffer) Len() int { return len(b.Samples) }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	samples := make([]float32, len(b.Samples))
	copy(samples, b.Samples)

	return &Buffer{Samples: samples, SampleRate: b.SampleRate}
}

// Frames converts a time in seconds into a sample count at the buffer's rate,
// rounding half away from zero.
func (b *Buffer) Frames(seconds float64) int {
	return SecondsToFrames(seconds, b.SampleRate)
}

// SecondsToFrames rounds seconds*sampleRate to the nearest integer,
// saturating at the int limits. NaN gives 0.
func SecondsToFrames(seconds float64, sampleRate int) int {
	f := math.Round(seconds * float64(sampleRate))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// Source exposes the buffer as a mono Source so it can feed the streaming
// primitives (Resampler, MonoMixer). The buffer must not be mutated while the
// Source is being read.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return 1 }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}
	return n, nil
}
