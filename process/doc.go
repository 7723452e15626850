// SPDX-License-Identifier: EPL-2.0

// Package process runs the per-recording pipeline: resample to the target
// rate, normalize loudness, then fade the edges.
//
//	opts := process.Defaults()
//	opts.Normalizer = normalize.GainShift{}
//	opts.Level = normalize.Target(-23)
//	out, err := process.Process(ctx, buf, opts)
package process
