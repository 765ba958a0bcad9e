// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Default fixture parameters.
const (
	DefaultDuration   = 3.0
	DefaultFrequency  = 440.0 // A4
	DefaultSampleRate = 48000
	DefaultAmplitude  = 0.3
)

// Spec describes a sine-tone stereo fixture. The zero value is not valid.
type Spec struct {
	OutputPath string
	Duration   float64 // seconds
	Frequency  float64 // Hz
	SampleRate int     // Hz
	Amplitude  float64 // 0..1
}

// DefaultOutputPath is ~/Downloads/test.wav, falling back to the working
// directory when the home directory is unknown.
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "test.wav"
	}

	return filepath.Join(home, "Downloads", "test.wav")
}

// DefaultSpec returns a 3 second 440 Hz tone at 48 kHz, amplitude 0.3, written to path.
func DefaultSpec(path string) Spec {
	return Spec{
		OutputPath: path,
		Duration:   DefaultDuration,
		Frequency:  DefaultFrequency,
		SampleRate: DefaultSampleRate,
		Amplitude:  DefaultAmplitude,
	}
}

// Validate reports the first field that violates its constraint, wrapped in ErrInvalidSpec.
func (s Spec) Validate() error {
	switch {
	case s.OutputPath == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidSpec)
	case !finitePositive(s.Duration):
		return fmt.Errorf("%w: duration %v must be > 0", ErrInvalidSpec, s.Duration)
	case !finitePositive(s.Frequency):
		return fmt.Errorf("%w: frequency %v must be > 0", ErrInvalidSpec, s.Frequency)
	case s.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be > 0", ErrInvalidSpec, s.SampleRate)
	case math.IsNaN(s.Amplitude) || s.Amplitude < 0 || s.Amplitude > 1:
		return fmt.Errorf("%w: amplitude %v must be within [0,1]", ErrInvalidSpec, s.Amplitude)
	}

	if frames := s.rawFrames(); frames > math.MaxUint32/4 {
		return fmt.Errorf("%w: %.0f frames do not fit a WAV file", ErrInvalidSpec, frames)
	}

	return nil
}

// TotalFrames is round(SampleRate × Duration). Call Validate first.
func (s Spec) TotalFrames() int {
	return int(s.rawFrames())
}

func (s Spec) rawFrames() float64 {
	return math.Round(float64(s.SampleRate) * s.Duration)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
