// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"fmt"
	"strings"
	"time"
)

// Policy decides what a failing check does to the rest of the run.
type Policy int

const (
	// Gating checks stop the run and fail the report when they do not pass.
	Gating Policy = iota
	// Advisory checks only produce a warning when they do not pass.
	Advisory
)

func (p Policy) String() string {
	if p == Gating {
		return "gating"
	}

	return "advisory"
}

// Expectation is a check's success predicate over an exited command.
//
// Keyword matching on tool output is fragile; prefer ExitCode where the tool
// reports success through its exit status.
type Expectation struct {
	Description string
	Match       func(Outcome) bool
}

// ExitCode passes when the command exited with code.
func ExitCode(code int) Expectation {
	return Expectation{
		Description: fmt.Sprintf("exit code %d", code),
		Match:       func(o Outcome) bool { return o.Exited(code) },
	}
}

// OutputContains passes when stdout or stderr contains text.
func OutputContains(text string) Expectation {
	return Expectation{
		Description: fmt.Sprintf("output contains %q", text),
		Match:       func(o Outcome) bool { return strings.Contains(o.Output(), text) },
	}
}

// OutputLacks passes when neither stdout nor stderr contains text.
func OutputLacks(text string) Expectation {
	return Expectation{
		Description: fmt.Sprintf("output lacks %q", text),
		Match:       func(o Outcome) bool { return !strings.Contains(o.Output(), text) },
	}
}

// AllOf passes when every expectation passes.
func AllOf(exps ...Expectation) Expectation {
	return Expectation{
		Description: joinDescriptions(exps, " and "),
		Match: func(o Outcome) bool {
			for _, e := range exps {
				if !e.Match(o) {
					return false
				}
			}
			return true
		},
	}
}

// AnyOf passes when at least one expectation passes.
func AnyOf(exps ...Expectation) Expectation {
	return Expectation{
		Description: joinDescriptions(exps, " or "),
		Match: func(o Outcome) bool {
			for _, e := range exps {
				if e.Match(o) {
					return true
				}
			}
			return false
		},
	}
}

func joinDescriptions(exps []Expectation, sep string) string {
	parts := make([]string, len(exps))
	for i, e := range exps {
		parts[i] = e.Description
	}

	return strings.Join(parts, sep)
}

// Check is one step of a diagnostic run.
type Check struct {
	Name    string
	Command Command
	Timeout time.Duration
	Policy  Policy
	// Expect defaults to ExitCode(0) when Match is nil.
	Expect Expectation

	PassMessage string
	FailMessage string
}

func (c Check) expectation() Expectation {
	if c.Expect.Match == nil {
		return ExitCode(0)
	}

	return c.Expect
}
