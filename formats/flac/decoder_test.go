// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type fakeParser struct {
	frames []*frame
}

func (f *fakeParser) ParseNext() (*frame, error) {
	if len(f.frames) == 0 {
		return nil, io.EOF
	}
	next := f.frames[0]
	f.frames = f.frames[1:]
	return next, nil
}

func TestSource_InterleavesFrames(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeParser{frames: []*frame{
			{channels: [][]int32{{16384, 0}, {-16384, 8192}}},
			{channels: [][]int32{{32767}, {-32768}}},
		}},
		sampleRate: 44100,
		channels:   2,
		scale:      32768,
	}

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0.5, -0.5, 0, 0.25, 32767.0 / 32768, -1}
	if n != len(want) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(want))
	}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ChannelMismatch(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeParser{frames: []*frame{{channels: [][]int32{{1}}}}},
		sampleRate: 8000,
		channels:   2,
		scale:      32768,
	}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ReadSamples() error = %v, want ErrChannelMismatch", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	if !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
	}
}
