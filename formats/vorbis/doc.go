// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
// Samples are already float32 in [-1, 1] and are passed through unchanged.
package vorbis
