// SPDX-License-Identifier: EPL-2.0

// Package audfixture builds synthetic audio test fixtures and runs the
// environment checks that go with them.
//
// The module is split into small packages:
//   - audio: sample streams, the sine ToneSource and the StereoUpmixer
//   - formats/wav: byte-exact stereo 16-bit WAV encoding and decoding
//   - fixture: fixture specs, generation to disk and inspection
//   - diag: the diagnostic harness that runs external build, analysis
//     and device checks with timeouts
//   - utils: sample quantization
//
// # Quick Start
//
// Write the default fixture (3 s, 440 Hz, 48 kHz stereo, amplitude 0.3):
//
//	spec := fixture.DefaultSpec(fixture.DefaultOutputPath())
//	meta, err := fixture.NewGenerator(logger).Generate(spec)
//	// meta.SizeBytes == 44 + spec.TotalFrames()*4
//
// Render the same samples in memory instead:
//
//	pcm, rate, err := audfixture.RenderStereo16(spec)
//
// # Diagnostics
//
//	harness := diag.NewHarness(diag.NewCommandRunner(logger), diag.DefaultChecks(cfg), logger)
//	report := harness.Run(ctx)
//	report.Render(os.Stdout)
//
// A failing gating check stops the sequence and marks the report failed;
// advisory failures are recorded as warnings. The report always ends with
// the manual test guidance.
//
// The cmd/solarcheck tool wraps both as the gen-wav and doctor commands.
package audfixture
