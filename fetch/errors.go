// SPDX-License-Identifier: EPL-2.0

package fetch

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrEmptyLocation    = errors.New("empty location")
	ErrNotRegularFile   = errors.New("not a regular file")
)
