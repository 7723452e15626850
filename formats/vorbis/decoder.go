// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/soundbank/audio"
	"github.com/jfreymuth/oggvorbis"
)

// bufSize is the preferred read size in samples.
const bufSize = 4096

// oggReader is the subset of oggvorbis.Reader used by stream.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// stream passes decoded Vorbis samples through; they are already float32
// in [-1, 1].
type stream struct {
	r     oggReader
	rate  int
	chans int
}

func newStream(r oggReader) *stream {
	return &stream{r: r, rate: r.SampleRate(), chans: r.Channels()}
}

func (s *stream) SampleRate() int { return s.rate }
func (s *stream) Channels() int   { return s.chans }
func (s *stream) BufSize() int    { return bufSize }
func (s *stream) Close() error    { return nil }

// ReadSamples decodes whole frames only; dst is truncated to a multiple of
// the channel count.
func (s *stream) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) / s.chans * s.chans
	if whole == 0 {
		return 0, nil
	}

	n, err := s.r.Read(dst[:whole])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotVorbisFile, err)
	}

	if dec.Channels() <= 0 || dec.SampleRate() <= 0 {
		return nil, ErrUnsupportedVorbisLayout
	}

	return newStream(dec), nil
}
