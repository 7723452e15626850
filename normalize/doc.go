// SPDX-License-Identifier: EPL-2.0

// Package normalize brings recordings to a target loudness in dBFS.
//
// GainShift measures RMS on the 16-bit representation and applies one
// uniform gain. External hands the buffer to an EBU R128 tool such as
// ffmpeg-normalize through temporary WAV files.
//
//	n, _ := normalize.New("gain")
//	out, err := n.Normalize(ctx, buf, normalize.Target(-23))
package normalize
