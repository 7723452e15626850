// SPDX-License-Identifier: EPL-2.0

// Package decode turns a file, URL or stream in any supported container
// (WAV, AIFF, MP3, Ogg Vorbis, FLAC) into a mono audio.Buffer.
//
// The container is taken from Options.Format, then from the location's
// extension, then from the leading magic bytes:
//
//	buf, err := decode.File(ctx, fetch.New(), "https://host/a.wav", decode.Options{
//		Window: audio.Window{Offset: 2, Duration: 3},
//	})
package decode
