// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeReader struct {
	data []int
	pos  int
	err  error
}

func (f *fakeReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_Scales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		in       int
		want     float32
	}{
		{bitDepth: 16, in: 16384, want: 0.5},
		{bitDepth: 16, in: -32768, want: -1},
		{bitDepth: 24, in: 4194304, want: 0.5},
		{bitDepth: 32, in: -1073741824, want: -0.5},
	}

	for _, tt := range tests {
		src := NewSource(&fakeReader{data: []int{tt.in}}, 8000, 1, tt.bitDepth)
		dst := make([]float32, 4)

		n, err := src.ReadSamples(dst)
		if n != 1 || err != io.EOF {
			t.Fatalf("ReadSamples() = %d, %v; want 1, io.EOF", n, err)
		}
		if dst[0] != tt.want {
			t.Errorf("%d-bit %d => %v, want %v", tt.bitDepth, tt.in, dst[0], tt.want)
		}
	}
}

func TestSource_EOFAndErrors(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{}, 8000, 1, 16)
	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
		t.Errorf("empty ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}

	boom := errors.New("boom")
	src = NewSource(&fakeReader{err: boom}, 8000, 1, 16)
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want boom", err)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	rs, err := ReadSeeker(io.MultiReader(strings.NewReader("abc")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "bc" {
		t.Errorf("read after seek = %q, want %q", rest, "bc")
	}
}
