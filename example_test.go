// SPDX-License-Identifier: EPL-2.0

package soundbank_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/soundbank"
	"github.com/ik5/soundbank/audio"
	"github.com/ik5/soundbank/fetch"
	"github.com/ik5/soundbank/formats/wav"
	"github.com/ik5/soundbank/normalize"
	"github.com/ik5/soundbank/process"
	"github.com/ik5/soundbank/segment"
)

// Example_prepare cuts two seconds out of a five second recording and
// converts it to 8 kHz.
func Example_prepare() {
	dir, _ := os.MkdirTemp("", "soundbank-example")
	defer os.RemoveAll(dir)

	samples := make([]float32, 5*16000)
	for i := range samples {
		samples[i] = 0.25
	}
	in := filepath.Join(dir, "in.wav")
	if err := wav.WriteFile(in, &audio.Buffer{Samples: samples, SampleRate: 16000}); err != nil {
		fmt.Println(err)
		return
	}

	opts := process.Defaults()
	opts.TargetRate = 8000
	opts.Resampler = process.Cubic{}

	buf, err := soundbank.Prepare(context.Background(), fetch.New(), in, segment.Pair(1, 3), opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %.1f s\n", buf.SampleRate, buf.Duration())
	// Output: 8000 Hz, 2.0 s
}

// Example_normalize brings a quiet buffer to -20 dBFS.
func Example_normalize() {
	samples := make([]float32, 8000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 0.01
		} else {
			samples[i] = -0.01
		}
	}

	out, _ := normalize.GainShift{}.Normalize(context.Background(),
		&audio.Buffer{Samples: samples, SampleRate: 8000}, normalize.Target(-20))

	fmt.Printf("%.1f dBFS\n", audio.DBFS(audio.ToPCM16(out)))
	// Output: -20.0 dBFS
}
