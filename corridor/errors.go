// SPDX-License-Identifier: MIT
package corridor

import "errors"

var (
	// ErrBadWidth indicates a corridor width that is neither FullWidth nor in [1, stacks-1].
	ErrBadWidth = errors.New("corridor: invalid corridor width")

	// ErrNilSource indicates a Select call without a random source on a partial corridor.
	ErrNilSource = errors.New("corridor: random source is nil")
)
