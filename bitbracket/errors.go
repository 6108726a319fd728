/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bitbracket

import "errors"

var (
	// ErrType reports an argument of the wrong kind: competitors of mixed
	// dynamic types or a missing outcome source.
	ErrType = errors.New("bitbracket: invalid type")

	// ErrValue reports an argument of the right kind but an unusable value:
	// a field that is not a power of two, a non-positive simulation count, or
	// an outcome source that misbehaves when probed.
	ErrValue = errors.New("bitbracket: invalid value")
)
