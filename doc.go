// SPDX-License-Identifier: EPL-2.0

// Package soundbank prepares sound-event recordings for a dataset: it cuts a
// recording to its annotated segment, resamples it, normalizes its loudness,
// fades its edges and writes it as 16-bit mono WAV.
//
// # Quick Start
//
// Prepare does the whole job for one file or URL:
//
//	opts := process.Defaults()
//	buf, err := soundbank.Prepare(ctx, fetch.New(), "in.flac", segment.Pair(2, 5), opts)
//
// PrepareFile does the same and writes the result:
//
//	err := soundbank.PrepareFile(ctx, fetch.New(), "in.flac", "out.wav", segment.None(), opts)
//
// # Packages
//
//   - audio: the mono Buffer, streaming Sources, fades and PCM16 loudness helpers.
//   - formats/...: WAV, AIFF, MP3, Ogg Vorbis and FLAC decoders; the WAV writer.
//   - decode: format detection and decoding of files, URLs and streams.
//   - segment: boundaries, boundary tables and slicing.
//   - normalize: gain-shift and external-tool loudness normalization.
//   - process: the resample, normalize, fade pipeline.
//   - dataset: downloading and preparing a whole dataset release.
//
// # Supported Formats
//
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// Output is always mono 16-bit PCM WAV.
package soundbank
