// SPDX-License-Identifier: EPL-2.0

package normalize

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ik5/soundbank/audio"
)

// Default target loudness in dBFS.
const DefaultLevel = -23.0

const (
	MethodGain   = "gain"
	MethodFFmpeg = "ffmpeg-normalize"
)

// Level is an optional target loudness in dBFS. The zero value is unset.
type Level struct {
	db  float64
	set bool
}

func Unset() Level { return Level{} }

func Target(db float64) Level { return Level{db: db, set: true} }

// DB returns the target and whether one is set.
func (l Level) DB() (float64, bool) { return l.db, l.set }

func (l Level) String() string {
	if !l.set {
		return "unset"
	}
	return fmt.Sprintf("%gdBFS", l.db)
}

// Normalizer brings a buffer to a target loudness. An unset level returns
// buf unchanged.
type Normalizer interface {
	Normalize(ctx context.Context, buf *audio.Buffer, level Level) (*audio.Buffer, error)
}

// GainShift measures the RMS level of the 16-bit representation and applies
// a single uniform gain to reach the target. Samples saturate at the int16
// limits. Silent buffers are returned unchanged.
type GainShift struct{}

func (GainShift) Normalize(_ context.Context, buf *audio.Buffer, level Level) (*audio.Buffer, error) {
	target, ok := level.DB()
	if !ok {
		return buf, nil
	}

	pcm := audio.ToPCM16(buf)
	current := audio.DBFS(pcm)
	if math.IsInf(current, -1) {
		return buf, nil
	}

	return audio.FromPCM16(audio.ApplyGainPCM16(pcm, target-current), buf.SampleRate), nil
}

// New returns the normalizer for method, or nil when method is empty.
// External options apply only to the ffmpeg-normalize method.
func New(method string, opts ...ExternalOption) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "":
		return nil, nil
	case MethodGain, "pydub":
		return GainShift{}, nil
	case MethodFFmpeg, "ffmpeg_normalize":
		return NewExternal(opts...), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}
