// SPDX-License-Identifier: EPL-2.0

package process

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/soundbank/audio"
	resampling "github.com/tphakala/go-audio-resampling"
)

var ErrUnknownResampler = errors.New("unknown resampler")

// Resampler converts a mono buffer to another sample rate.
type Resampler interface {
	Resample(buf *audio.Buffer, rate int) (*audio.Buffer, error)
}

// Soxr is a polyphase resampler modelled on libsoxr, used by default.
type Soxr struct {
	Quality resampling.QualitySpec
}

// NewSoxr returns a Soxr at the high quality preset.
func NewSoxr() Soxr {
	return Soxr{Quality: resampling.QualitySpec{Preset: resampling.QualityHigh}}
}

func (s Soxr) Resample(buf *audio.Buffer, rate int) (*audio.Buffer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, rate)
	}
	if buf.SampleRate == rate {
		return buf.Clone(), nil
	}
	if buf.Len() == 0 {
		return &audio.Buffer{SampleRate: rate}, nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(buf.SampleRate),
		OutputRate: float64(rate),
		Channels:   1,
		Quality:    s.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	in := make([]float64, buf.Len())
	for i, v := range buf.Samples {
		in[i] = float64(v)
	}

	out, err := r.Process(in)
	if err != nil {
		return nil, fmt.Errorf("resampling: %w", err)
	}
	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("flushing resampler: %w", err)
	}
	out = append(out, tail...)

	samples := make([]float32, len(out))
	for i, v := range out {
		samples[i] = float32(v)
	}

	return &audio.Buffer{Samples: samples, SampleRate: rate}, nil
}

// Cubic is the streaming Catmull-Rom resampler from package audio.
type Cubic struct{}

func (Cubic) Resample(buf *audio.Buffer, rate int) (*audio.Buffer, error) {
	return audio.Resample(buf, rate)
}

// NewResampler picks a resampler by name: "soxr" (or "soxr_hq", "high"),
// "soxr_vhq", "soxr_mq", "soxr_lq", "soxr_qq" or "cubic". Empty is "soxr".
func NewResampler(name string) (Resampler, error) {
	spec := func(p resampling.QualitySpec) Resampler { return Soxr{Quality: p} }

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "soxr", "soxr_hq", "high":
		return NewSoxr(), nil
	case "soxr_vhq":
		return spec(resampling.QualitySpec{Preset: resampling.QualityVeryHigh}), nil
	case "soxr_mq":
		return spec(resampling.QualitySpec{Preset: resampling.QualityMedium}), nil
	case "soxr_lq":
		return spec(resampling.QualitySpec{Preset: resampling.QualityLow}), nil
	case "soxr_qq":
		return spec(resampling.QualitySpec{Preset: resampling.QualityQuick}), nil
	case "cubic":
		return Cubic{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, name)
}
