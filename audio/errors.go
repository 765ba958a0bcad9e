// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidFrequency  = errors.New("frequency must be positive")
	ErrNegativeLength    = errors.New("frame count must not be negative")
	ErrNotMono           = errors.New("source must be mono")
)
