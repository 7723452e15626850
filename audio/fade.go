// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Edge selects which end of a buffer a fade is applied to.
type Edge int

const (
	FadeBoth Edge = iota
	FadeIn
	FadeOut
)

func (e Edge) String() string {
	switch e {
	case FadeIn:
		return "in"
	case FadeOut:
		return "out"
	case FadeBoth:
		return "both"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// ParseEdge accepts "in", "out" or "both" (case-insensitive). An empty string
// is "both".
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in":
		return FadeIn, nil
	case "out":
		return FadeOut, nil
	case "both", "":
		return FadeBoth, nil
	}
	return FadeBoth, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
}

// ApplyFade multiplies the edges of buf by a linear envelope, in place, and
// returns buf.
//
// The window is round(duration*rate) samples, capped at the buffer length.
// A fade-in ramps 0 to 1 across the window and a fade-out ramps 1 to 0; both
// ramps include their end points. With FadeBoth on a buffer shorter than
// two windows the ramps overlap and multiply. A duration <= 0 leaves buf
// untouched.
func ApplyFade(buf *Buffer, duration float64, edge Edge) *Buffer {
	if duration <= 0 || buf.Len() == 0 {
		return buf
	}

	length := min(buf.Frames(duration), buf.Len())
	if length <= 0 {
		return buf
	}

	if edge == FadeIn || edge == FadeBoth {
		ramp(buf.Samples[:length], 0, 1)
	}
	if edge == FadeOut || edge == FadeBoth {
		ramp(buf.Samples[buf.Len()-length:], 1, 0)
	}

	return buf
}

// ramp scales s by evenly spaced gains from `from` to `to` inclusive. A single
// sample gets `from`.
func ramp(s []float32, from, to float64) {
	if len(s) == 1 {
		s[0] *= float32(from)
		return
	}

	step := (to - from) / float64(len(s)-1)
	for i := range s {
		s[i] *= float32(from + step*float64(i))
	}
}
