// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/formats/wav"
)

// Example_roundTrip writes a mono buffer and decodes it again.
func Example_roundTrip() {
	buf := &audio.Buffer{Samples: []float32{0, 0.25, 0.5, -0.25, -0.5}, SampleRate: 16000}

	var out bytes.Buffer
	if err := wav.Write(&out, buf); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %d bytes\n", out.Len())

	src, err := wav.Decoder{}.Decode(&out)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())
	// Output:
	// Wrote 54 bytes
	// Sample rate: 16000 Hz
	// Channels: 1
}
