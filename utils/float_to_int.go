// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767 with rounding,
// so that +1 and -1 map to symmetric extremes.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * math.MaxInt16))
}

// Int16ToFloat32 divides by 32767, the inverse of Float32ToInt16. The single
// value below -32767 is clamped to -1.
func Int16ToFloat32(v int16) float32 {
	if v < -math.MaxInt16 {
		return -1
	}

	return float32(v) / math.MaxInt16
}
