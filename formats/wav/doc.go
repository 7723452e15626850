// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files.
//
// Decoding goes through github.com/go-audio/wav and accepts integer PCM at
// 16, 24 or 32 bits, any channel count and any sample rate. The returned
// audio.Source yields float32 samples in [-1.0, 1.0]:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Encoding always produces mono 16-bit PCM, the layout used for every
// processed recording:
//
//	err := wav.WriteFile("processed_audio/12_processed.wav", buf)
//
// Write streams the samples in 8 KiB chunks after a canonical 44-byte header.
package wav
