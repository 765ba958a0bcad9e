// SPDX-License-Identifier: EPL-2.0

// Package fixture produces sine-tone WAV test fixtures.
//
// A Spec names the output path, duration, frequency, sample rate and
// amplitude. Generate validates it, synthesizes round(rate × duration)
// frames, and writes a canonical stereo 16-bit PCM file:
//
//	gen := fixture.NewGenerator(logger)
//	meta, err := gen.Generate(fixture.DefaultSpec(fixture.DefaultOutputPath()))
//	if errors.Is(err, fixture.ErrInvalidSpec) {
//	    // bad parameters
//	}
//
// The written size is always 44 + frames × 4 bytes. Identical specs produce
// byte-identical files.
//
// Inspect reads a fixture back and reports its format, frame count, peak
// level and whether both channels carry the same signal.
package fixture
