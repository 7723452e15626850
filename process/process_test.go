// SPDX-License-Identifier: EPL-2.0

package process

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/internal/audiotest"
	"github.com/ik5/soundbank/normalize"
)

func constant(n, rate int, v float32) *audio.Buffer {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return &audio.Buffer{Samples: s, SampleRate: rate}
}

// recorder notes the rate of the buffer it was asked to normalize and the
// state of its edges.
type recorder struct {
	rate  int
	first float32
}

func (r *recorder) Normalize(_ context.Context, buf *audio.Buffer, _ normalize.Level) (*audio.Buffer, error) {
	r.rate = buf.SampleRate
	r.first = buf.Samples[0]
	return buf, nil
}

func TestProcess_Order(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	opts := Defaults()
	opts.TargetRate = 8000
	opts.Resampler = Cubic{}
	opts.Normalizer = rec
	opts.Level = normalize.Target(-23)

	out, err := Process(context.Background(), constant(16000, 16000, 0.5), opts)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if rec.rate != 8000 {
		t.Errorf("normalizer saw %d Hz, want 8000", rec.rate)
	}
	if rec.first == 0 {
		t.Error("normalizer saw a faded buffer")
	}
	if out.SampleRate != 8000 {
		t.Errorf("Process() rate = %d, want 8000", out.SampleRate)
	}
	if out.Samples[0] != 0 || out.Samples[out.Len()-1] != 0 {
		t.Errorf("edges = %v, %v; want 0, 0", out.Samples[0], out.Samples[out.Len()-1])
	}
	// 10 ms at 8 kHz.
	if out.Samples[80] == 0 {
		t.Error("sample after the fade window is zero")
	}
}

func TestProcess_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := constant(1000, 8000, 0.5)
	opts := Defaults()
	opts.TargetRate = 8000

	out, err := Process(context.Background(), in, opts)
	if err != nil {
		t.Fatal(err)
	}
	if in.Samples[0] != 0.5 {
		t.Errorf("input modified: %v", in.Samples[0])
	}
	if out.Samples[0] != 0 {
		t.Errorf("output not faded: %v", out.Samples[0])
	}
}

func TestProcess_NoNormalizationNoFade(t *testing.T) {
	t.Parallel()

	in := &audio.Buffer{Samples: audiotest.Sine(8000, 800, 100, 0.3), SampleRate: 8000}
	opts := Options{TargetRate: 8000, FadeDuration: 0, Normalizer: normalize.GainShift{}, Level: normalize.Unset()}

	out, err := Process(context.Background(), in, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("sample %d = %v, want %v", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestProcess_GainShiftLevel(t *testing.T) {
	t.Parallel()

	in := &audio.Buffer{Samples: audiotest.Sine(44100, 44100, 440, 0.05), SampleRate: 44100}
	opts := Defaults()
	opts.FadeDuration = 0
	opts.Normalizer = normalize.GainShift{}
	opts.Level = normalize.Target(-20)

	out, err := Process(context.Background(), in, opts)
	if err != nil {
		t.Fatal(err)
	}
	if level := audio.DBFS(audio.ToPCM16(out)); math.Abs(level+20) > 0.5 {
		t.Errorf("level = %v, want -20", level)
	}
}

func TestSoxr_Resample(t *testing.T) {
	t.Parallel()

	in := &audio.Buffer{Samples: audiotest.Sine(48000, 48000, 440, 0.5), SampleRate: 48000}

	out, err := NewSoxr().Resample(in, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if out.SampleRate != 16000 {
		t.Errorf("rate = %d, want 16000", out.SampleRate)
	}
	if out.Len() < 15500 || out.Len() > 16500 {
		t.Errorf("len = %d, want about 16000", out.Len())
	}

	same, err := NewSoxr().Resample(in, 48000)
	if err != nil || same.Len() != in.Len() || same == in {
		t.Errorf("same-rate Resample() = len %d, %v", same.Len(), err)
	}

	if _, err := NewSoxr().Resample(in, 0); !errors.Is(err, audio.ErrInvalidSampleRate) {
		t.Errorf("Resample(0) error = %v", err)
	}
}

func TestNewResampler(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "soxr", "SOXR_VHQ", "soxr_qq", "cubic"} {
		if _, err := NewResampler(name); err != nil {
			t.Errorf("NewResampler(%q) error = %v", name, err)
		}
	}
	if _, err := NewResampler("sinc"); !errors.Is(err, ErrUnknownResampler) {
		t.Errorf("NewResampler(sinc) error = %v", err)
	}
}
