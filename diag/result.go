// SPDX-License-Identifier: EPL-2.0

package diag

// Status is the classified result of a check.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusTimeout
	StatusSpawnError
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusTimeout:
		return "timeout"
	case StatusSpawnError:
		return "spawn error"
	default:
		return "unknown"
	}
}

// Classify maps an outcome to a status using exp for exited commands.
func Classify(o Outcome, exp Expectation) Status {
	switch o.Kind {
	case OutcomeTimeout:
		return StatusTimeout
	case OutcomeSpawnError:
		return StatusSpawnError
	}

	if exp.Match != nil && exp.Match(o) {
		return StatusPass
	}

	return StatusFail
}

// Result records one executed check.
type Result struct {
	Check   Check
	Status  Status
	Outcome Outcome
	// Warning is set for an advisory check that did not pass.
	Warning bool
}

func (r Result) Passed() bool { return r.Status == StatusPass }

// Report is the output of one harness run.
type Report struct {
	// RunID identifies the run in logs.
	RunID   string
	Results []Result
	// Failed is set when a gating check did not pass.
	Failed bool
	// Skipped names the checks that never ran because a gating check failed.
	Skipped []string
	// Notes are environment remarks shown before the results.
	Notes    []string
	Guidance string
}

// Warnings returns the advisory results that did not pass.
func (r Report) Warnings() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Warning {
			out = append(out, res)
		}
	}

	return out
}
