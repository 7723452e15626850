// SPDX-License-Identifier: EPL-2.0

// Package segment cuts a recording down to its annotated region.
//
// A Boundary is resolved once into an audio.Window. Boundary tables are plain
// text with whitespace or tab separated "start stop" columns in seconds; only
// the first non-blank row is used.
package segment
