// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/soundbank/audio"
	"github.com/mewkiz/flac"
)

// frameParser is the subset of flac.Stream used by source.
type frameParser interface {
	ParseNext() (*frame, error)
}

// frame is one decoded FLAC block, channel-major.
type frame struct {
	channels [][]int32
}

type streamParser struct {
	stream *flac.Stream
}

func (p streamParser) ParseNext() (*frame, error) {
	f, err := p.stream.ParseNext()
	if err != nil {
		return nil, err
	}

	out := &frame{channels: make([][]int32, len(f.Subframes))}
	for i, sub := range f.Subframes {
		out.channels[i] = sub.Samples[:f.BlockSize]
	}
	return out, nil
}

type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	scale      float32

	cur [][]int32 // current frame, channel-major
	pos int       // next sample index within cur
	eof bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	written := 0

	for written < frames {
		if len(s.cur) == 0 || s.pos >= len(s.cur[0]) {
			if s.eof {
				break
			}
			f, err := s.dec.ParseNext()
			if err == io.EOF {
				s.eof = true
				break
			}
			if err != nil {
				return written * s.channels, fmt.Errorf("%w", err)
			}
			if len(f.channels) != s.channels {
				return written * s.channels, ErrChannelMismatch
			}
			s.cur, s.pos = f.channels, 0
			continue
		}

		for c := range s.channels {
			dst[written*s.channels+c] = float32(s.cur[c][s.pos]) / s.scale
		}
		s.pos++
		written++
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}
	return written * s.channels, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.NChannels == 0 || info.SampleRate == 0 {
		return nil, ErrUnsupportedFlacLayout
	}

	return &source{
		dec:        streamParser{stream: stream},
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      float32(uint64(1) << (info.BitsPerSample - 1)),
	}, nil
}
