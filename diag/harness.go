// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the position of a Harness in its run.
type State int

const (
	StateIdle State = iota
	StateRunningCheck
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunningCheck:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Harness runs checks one at a time, in order.
type Harness struct {
	runner   Runner
	checks   []Check
	logger   *zap.Logger
	guidance string
	notes    []string

	mtx     sync.Mutex
	state   State
	current int
}

// NewHarness returns an idle Harness. The report guidance defaults to Guidance.
// A nil logger disables logging.
func NewHarness(runner Runner, checks []Check, logger *zap.Logger) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Harness{
		runner:   runner,
		checks:   checks,
		logger:   logger,
		guidance: Guidance,
	}
}

// SetGuidance replaces the static text appended to every report.
func (h *Harness) SetGuidance(text string) { h.guidance = text }

// AddNote adds an environment remark to every report.
func (h *Harness) AddNote(note string) { h.notes = append(h.notes, note) }

// State returns the current state and, while running, the index of the active check.
func (h *Harness) State() (State, int) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return h.state, h.current
}

func (h *Harness) setState(s State, i int) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.state, h.current = s, i
}

// Run executes the checks in order and returns the report.
//
// A gating check that does not pass ends the run: its result is recorded,
// the report is marked failed and later checks are listed as skipped.
// Advisory checks that do not pass are recorded as warnings and the run
// continues. Guidance is included regardless of outcomes.
func (h *Harness) Run(ctx context.Context) Report {
	report := Report{
		RunID:    uuid.New().String(),
		Notes:    append([]string(nil), h.notes...),
		Guidance: h.guidance,
	}
	logger := h.logger.With(zap.String("run_id", report.RunID))

	for i, check := range h.checks {
		h.setState(StateRunningCheck, i)

		log := logger.With(zap.String("check", check.Name), zap.Stringer("policy", check.Policy))
		log.Info("running check", zap.Stringer("command", check.Command))

		outcome := h.runner.Run(ctx, check.Command, check.Timeout)
		res := Result{
			Check:   check,
			Status:  Classify(outcome, check.expectation()),
			Outcome: outcome,
		}

		if res.Passed() {
			log.Info("check passed", zap.Duration("elapsed", outcome.Duration))
			report.Results = append(report.Results, res)
			continue
		}

		if check.Policy == Advisory {
			res.Warning = true
			report.Results = append(report.Results, res)
			log.Warn("advisory check did not pass", zap.Stringer("status", res.Status), zap.Error(outcome.Err))
			continue
		}

		report.Results = append(report.Results, res)
		report.Failed = true
		for _, rest := range h.checks[i+1:] {
			report.Skipped = append(report.Skipped, rest.Name)
		}
		log.Error("gating check failed, stopping", zap.Stringer("status", res.Status), zap.Error(outcome.Err))

		break
	}

	h.setState(StateCompleted, len(report.Results))

	return report
}
