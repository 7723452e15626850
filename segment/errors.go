// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	ErrInvalidBoundary = errors.New("invalid segment boundary")
	ErrBadTable        = errors.New("malformed segment table")
)
