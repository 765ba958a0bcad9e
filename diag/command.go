// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"strings"
	"time"
)

// Command is an external program invocation. No shell is involved.
type Command struct {
	Name string // executable, looked up in PATH when it has no separator
	Args []string
	Dir  string   // working directory; empty means the current one
	Env  []string // KEY=VALUE pairs added to the inherited environment
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return c.Name + " " + strings.Join(c.Args, " ")
}

// OutcomeKind classifies how a command invocation ended.
type OutcomeKind int

const (
	// OutcomeExited means the process ran to completion; see ExitCode.
	OutcomeExited OutcomeKind = iota
	// OutcomeTimeout means the process was killed after its time limit.
	OutcomeTimeout
	// OutcomeSpawnError means the process never started.
	OutcomeSpawnError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeExited:
		return "exited"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeSpawnError:
		return "spawn error"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single CommandRunner.Run call.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode int // valid for OutcomeExited; -1 when the process was killed by a signal
	Stdout   string
	Stderr   string
	Err      error // wraps ErrCommandSpawn or ErrCommandTimeout; nil for OutcomeExited
	PID      int   // 0 when the process never started
	Duration time.Duration
}

// Exited reports whether the process finished with the given exit code.
func (o Outcome) Exited(code int) bool {
	return o.Kind == OutcomeExited && o.ExitCode == code
}

// Output returns stdout followed by stderr, the way a 2>&1 redirect would show them.
func (o Outcome) Output() string {
	if o.Stderr == "" {
		return o.Stdout
	}
	if o.Stdout == "" {
		return o.Stderr
	}

	return o.Stdout + "\n" + o.Stderr
}
