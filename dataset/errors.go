// SPDX-License-Identifier: EPL-2.0

package dataset

import "errors"

var (
	ErrNoMetadata      = errors.New("dataset listing has no metadata table")
	ErrUnknownSalience = errors.New("unknown salience code")
	ErrBadLabel        = errors.New("malformed label row")
)
