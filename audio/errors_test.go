// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidDstSize", ErrInvalidDstSize, "dst size must be multiple of channels"},
		{"ErrInvalidSampleRate", ErrInvalidSampleRate, "sample rate must be positive"},
		{"ErrInvalidFrequency", ErrInvalidFrequency, "frequency must be positive"},
		{"ErrNegativeLength", ErrNegativeLength, "frame count must not be negative"},
		{"ErrNotMono", ErrNotMono, "source must be mono"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}

			wrapped := errors.Join(tt.err, errors.New("additional context"))
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false, want true", tt.name)
			}
		})
	}
}
