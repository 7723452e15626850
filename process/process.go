// SPDX-License-Identifier: EPL-2.0

package process

import (
	"context"
	"fmt"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/normalize"
)

const (
	DefaultTargetRate   = 44100
	DefaultFadeDuration = 0.010
)

// Options configures Process.
type Options struct {
	// TargetRate is the output sample rate in Hz.
	TargetRate int
	// Level is the loudness target. Unset skips normalization.
	Level normalize.Level
	// Normalizer applies Level. Nil skips normalization.
	Normalizer normalize.Normalizer
	// FadeDuration in seconds; <= 0 disables fading.
	FadeDuration float64
	FadeEdge     audio.Edge
	// Resampler defaults to Soxr at high quality.
	Resampler Resampler
}

// Defaults returns 44.1 kHz output, no normalization and a 10 ms fade on both
// edges.
func Defaults() Options {
	return Options{
		TargetRate:   DefaultTargetRate,
		Level:        normalize.Unset(),
		FadeDuration: DefaultFadeDuration,
		FadeEdge:     audio.FadeBoth,
		Resampler:    NewSoxr(),
	}
}

// Process resamples, normalizes and fades buf, in that order. The fade is
// computed at the output rate and after loudness has been measured. buf is
// not modified.
func Process(ctx context.Context, buf *audio.Buffer, opts Options) (*audio.Buffer, error) {
	if opts.TargetRate <= 0 {
		opts.TargetRate = buf.SampleRate
	}
	if opts.Resampler == nil {
		opts.Resampler = NewSoxr()
	}

	out := buf
	if buf.SampleRate != opts.TargetRate {
		var err error
		out, err = opts.Resampler.Resample(buf, opts.TargetRate)
		if err != nil {
			return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", buf.SampleRate, opts.TargetRate, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Normalizer != nil {
		var err error
		out, err = opts.Normalizer.Normalize(ctx, out, opts.Level)
		if err != nil {
			return nil, fmt.Errorf("normalizing to %v: %w", opts.Level, err)
		}
	}

	if out == buf {
		out = buf.Clone()
	}

	return audio.ApplyFade(out, opts.FadeDuration, opts.FadeEdge), nil
}
