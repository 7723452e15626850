// SPDX-License-Identifier: EPL-2.0

// Package fetch reads dataset resources from HTTP(S) URLs or local paths
// through a single Client. There is no retry and no checksum verification;
// a non-200 response is reported as ErrUnexpectedStatus.
package fetch
