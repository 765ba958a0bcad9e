// SPDX-License-Identifier: EPL-2.0

package fixture

import "errors"

var (
	// ErrInvalidSpec reports fixture parameters outside their allowed range.
	ErrInvalidSpec = errors.New("invalid fixture spec")
	// ErrIO reports a failure creating directories or writing the fixture file.
	ErrIO = errors.New("fixture I/O failure")
)
