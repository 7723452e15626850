// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"context"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/decode"
	"github.com/ik5/soundbank/fetch"
)

// Buffer returns a copy of the samples in
// [round(offset*rate), round((offset+duration)*rate)), clamped to the buffer.
// An unbounded window runs to the end; a start past the end gives an empty
// buffer.
func Buffer(buf *audio.Buffer, w audio.Window) *audio.Buffer {
	start := min(max(buf.Frames(w.Offset), 0), buf.Len())
	end := buf.Len()
	if w.Bounded() {
		end = min(max(buf.Frames(w.Offset+w.Duration), start), buf.Len())
	}

	samples := make([]float32, end-start)
	copy(samples, buf.Samples[start:end])

	return &audio.Buffer{Samples: samples, SampleRate: buf.SampleRate}
}

// File decodes only the region of location selected by b. The leading part
// of the stream is skipped while decoding, never stored.
func File(ctx context.Context, opener fetch.Opener, location string, b Boundary, opts decode.Options) (*audio.Buffer, error) {
	w, err := b.Resolve(ctx, opener)
	if err != nil {
		return nil, err
	}
	opts.Window = w

	return decode.File(ctx, opener, location, opts)
}
