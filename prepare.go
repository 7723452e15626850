// SPDX-License-Identifier: EPL-2.0

package soundbank

import (
	"context"
	"fmt"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/decode"
	"github.com/ik5/soundbank/fetch"
	"github.com/ik5/soundbank/formats/wav"
	"github.com/ik5/soundbank/process"
	"github.com/ik5/soundbank/segment"
)

// Prepare decodes the region of location selected by b and runs it through
// the processing pipeline.
func Prepare(ctx context.Context, opener fetch.Opener, location string, b segment.Boundary, opts process.Options) (*audio.Buffer, error) {
	buf, err := segment.File(ctx, opener, location, b, decode.Options{})
	if err != nil {
		return nil, err
	}

	out, err := process.Process(ctx, buf, opts)
	if err != nil {
		return nil, fmt.Errorf("processing %s: %w", location, err)
	}

	return out, nil
}

// PrepareFile runs Prepare and writes the result to out as 16-bit mono WAV.
func PrepareFile(ctx context.Context, opener fetch.Opener, location, out string, b segment.Boundary, opts process.Options) error {
	buf, err := Prepare(ctx, opener, location, b, opts)
	if err != nil {
		return err
	}

	return wav.WriteFile(out, buf)
}
