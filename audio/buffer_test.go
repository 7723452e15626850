// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

func TestNewBuffer_InvalidRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -8000} {
		if _, err := NewBuffer(nil, rate); !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("NewBuffer(nil, %d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(make([]float32, 22050), 44100)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if got := buf.Duration(); got != 0.5 {
		t.Errorf("Duration() = %v, want 0.5", got)
	}
	if got := buf.Frames(0.25); got != 11025 {
		t.Errorf("Frames(0.25) = %d, want 11025", got)
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: []float32{0.1, 0.2}, SampleRate: 8000}
	clone := buf.Clone()
	clone.Samples[0] = 1

	if buf.Samples[0] != 0.1 {
		t.Errorf("original sample changed to %v after mutating clone", buf.Samples[0])
	}
}

func TestBuffer_Source(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: []float32{1, 2, 3, 4, 5}, SampleRate: 8000}
	src := buf.Source()

	if src.Channels() != 1 || src.SampleRate() != 8000 {
		t.Fatalf("Source() = %d ch @ %d Hz, want 1 ch @ 8000 Hz", src.Channels(), src.SampleRate())
	}

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if n != 3 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v; want 3, nil", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Fatalf("second ReadSamples() = %d, %v; want 2, io.EOF", n, err)
	}
	if dst[0] != 4 || dst[1] != 5 {
		t.Errorf("second read = %v, want [4 5 ...]", dst[:2])
	}

	if n, err = src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}
