// SPDX-License-Identifier: EPL-2.0

package diag

import "errors"

var (
	ErrEmptyCommand   = errors.New("no command to run")
	ErrCommandSpawn   = errors.New("command could not be started")
	ErrCommandTimeout = errors.New("command timed out")
)
