// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedChannels   = errors.New("only mono or stereo sources supported")
	ErrInvalidSampleRate     = errors.New("invalid sample rate")
	ErrDataTooLarge          = errors.New("PCM data exceeds WAV size limit")
	ErrFrameCountMismatch    = errors.New("source frame count does not match header")
)
