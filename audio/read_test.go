// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/soundbank/internal/audiotest"
)

func TestReadMono_WholeStream(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(1000, 1, 10000)
	buf, err := ReadMono(src, Window{})
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}

	if buf.Len() != 10000 {
		t.Fatalf("Len() = %d, want 10000", buf.Len())
	}
	if buf.SampleRate != 1000 {
		t.Errorf("SampleRate = %d, want 1000", buf.SampleRate)
	}
	if buf.Samples[9999] != 9999 {
		t.Errorf("last sample = %v, want 9999", buf.Samples[9999])
	}
}

func TestReadMono_Window(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		window    Window
		wantLen   int
		wantFirst float32
	}{
		{name: "offset only", window: Window{Offset: 2}, wantLen: 8000, wantFirst: 2000},
		{name: "offset and duration", window: Window{Offset: 2, Duration: 3}, wantLen: 3000, wantFirst: 2000},
		{name: "duration only", window: Window{Duration: 0.5}, wantLen: 500, wantFirst: 0},
		{name: "duration past end", window: Window{Offset: 9, Duration: 5}, wantLen: 1000, wantFirst: 9000},
		{name: "offset past end", window: Window{Offset: 20}, wantLen: 0},
		{name: "rounded offset", window: Window{Offset: 0.0016, Duration: 0.001}, wantLen: 1, wantFirst: 2},
		{name: "rounded end", window: Window{Offset: 0.0004, Duration: 0.0012}, wantLen: 2, wantFirst: 0},
		{name: "huge duration", window: Window{Offset: 9, Duration: 1e12}, wantLen: 1000, wantFirst: 9000},
		{name: "duration beyond int range", window: Window{Duration: 1e300}, wantLen: 10000, wantFirst: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewRampSource(1000, 1, 10000)
			buf, err := ReadMono(src, tt.window)
			if err != nil {
				t.Fatalf("ReadMono() error = %v", err)
			}
			if buf.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", buf.Len(), tt.wantLen)
			}
			if tt.wantLen > 0 && buf.Samples[0] != tt.wantFirst {
				t.Errorf("first sample = %v, want %v", buf.Samples[0], tt.wantFirst)
			}
		})
	}
}

func TestReadMono_StopsAtWindowEnd(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(1000, 1, 100000)
	if _, err := ReadMono(src, Window{Duration: 1}); err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}

	// One chunk of BufSize frames at most.
	if src.Generated() > 1000+src.BufSize() {
		t.Errorf("source produced %d frames for a 1000-frame window", src.Generated())
	}
}

func TestReadMono_DownmixesStereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 100, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.5
		}
		return -0.1
	})

	buf, err := ReadMono(src, Window{})
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if buf.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", buf.Len())
	}
	for i, v := range buf.Samples {
		if math.Abs(float64(v-0.2)) > 1e-6 {
			t.Fatalf("Samples[%d] = %v, want 0.2", i, v)
		}
	}
}

func TestResample(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: audiotest.Sine(44100, 44100, 440, 0.5), SampleRate: 44100}

	out, err := Resample(buf, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if out.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", out.SampleRate)
	}
	if out.Len() < 15990 || out.Len() > 16010 {
		t.Errorf("Len() = %d, want ≈16000", out.Len())
	}
}

func TestResample_SameRateClones(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: []float32{0.1, 0.2, 0.3}, SampleRate: 8000}
	out, err := Resample(buf, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	out.Samples[0] = 0
	if buf.Samples[0] != 0.1 {
		t.Error("Resample() at the same rate returned a shared buffer")
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := Resample(&Buffer{SampleRate: 8000}, 0); err == nil {
		t.Error("Resample(rate=0) error = nil, want error")
	}
}
