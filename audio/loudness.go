// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/soundbank/utils"
)

// FullScale16 is the reference amplitude for 16-bit dBFS measurements.
const FullScale16 = 32768.0

// ToPCM16 quantises buf to signed 16-bit samples.
func ToPCM16(buf *Buffer) []int16 {
	pcm := make([]int16, buf.Len())
	for i, v := range buf.Samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return pcm
}

// FromPCM16 is the inverse of ToPCM16.
func FromPCM16(pcm []int16, sampleRate int) *Buffer {
	samples := make([]float32, len(pcm))
	for i, v := range pcm {
		samples[i] = utils.Int16ToFloat32(v)
	}

	return &Buffer{Samples: samples, SampleRate: sampleRate}
}

// DBFS returns the RMS level of pcm in decibels relative to 16-bit full
// scale. Silence and empty input return negative infinity.
func DBFS(pcm []int16) float64 {
	if len(pcm) == 0 {
		return math.Inf(-1)
	}

	var sum float64
	for _, v := range pcm {
		f := float64(v)
		sum += f * f
	}

	rms := math.Sqrt(sum / float64(len(pcm)))
	if rms == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(rms/FullScale16)
}

// ApplyGainPCM16 scales every sample by gainDB decibels, rounding and
// saturating at the int16 limits. It returns a new slice.
func ApplyGainPCM16(pcm []int16, gainDB float64) []int16 {
	factor := math.Pow(10, gainDB/20)
	out := make([]int16, len(pcm))

	for i, v := range pcm {
		x := math.Round(float64(v) * factor)
		switch {
		case x > math.MaxInt16:
			out[i] = math.MaxInt16
		case x < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(x)
		}
	}

	return out
}
