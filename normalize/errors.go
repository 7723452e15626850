// SPDX-License-Identifier: EPL-2.0

package normalize

import "errors"

var (
	ErrExternalTool  = errors.New("external normalizer failed")
	ErrUnknownMethod = errors.New("unknown normalization method")
)
