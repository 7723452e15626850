// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac, one frame at
// a time, scaling samples by the stream's bit depth.
package flac
