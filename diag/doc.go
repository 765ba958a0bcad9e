// SPDX-License-Identifier: EPL-2.0

// Package diag runs external diagnostic commands for the audio application
// and reports the results.
//
// CommandRunner executes one Command with a time limit and returns an
// Outcome: the process exited (with its code and captured output), timed
// out and was killed, or could not be started. Run never returns an error
// or panics; everything is in the Outcome.
//
// A Harness runs a list of Checks strictly in order. Each check's
// Expectation turns an exited command into pass or fail. A check with the
// Gating policy stops the run when it does not pass and marks the Report
// failed; an Advisory check only adds a warning. The Report always carries
// the manual test Guidance.
//
//	runner := diag.NewCommandRunner(logger)
//	harness := diag.NewHarness(runner, diag.DefaultChecks(env), logger)
//	report := harness.Run(ctx)
//	_ = report.Render(os.Stdout)
package diag
