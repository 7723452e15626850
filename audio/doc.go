// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample types and stateless transforms used to
// prepare dataset recordings.
//
// There are two layers:
//   - Streaming: the Source interface, the Decoder Registry, the cubic
//     Resampler and the MonoMixer. Decoders in the formats packages produce
//     Sources.
//   - Buffers: Buffer holds a whole mono recording as float32 in [-1, 1] with
//     its sample rate. ReadMono turns a Source into a Buffer, optionally
//     restricted to a time Window, and the buffer transforms (ApplyFade,
//     Resample, the PCM16 helpers and DBFS) operate on it.
//
// # Windows
//
// ReadMono skips round(offset*rate) frames and keeps round(duration*rate)
// frames. Skipped frames are discarded as they are read and the source is not
// read past the end of the window:
//
//	buf, err := audio.ReadMono(src, audio.Window{Offset: 2, Duration: 3})
//
// # Fades
//
// ApplyFade multiplies the first and/or last round(duration*rate) samples by
// a linear ramp, in place:
//
//	audio.ApplyFade(buf, 0.010, audio.FadeBoth)
//
// # Loudness
//
// Loudness is measured on the 16-bit representation: ToPCM16 quantises a
// buffer, DBFS returns 20*log10(RMS/32768) (negative infinity for silence),
// ApplyGainPCM16 applies a saturating gain and FromPCM16 converts back.
package audio
