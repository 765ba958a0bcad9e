// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Runner runs one external command with a time limit.
type Runner interface {
	Run(ctx context.Context, cmd Command, timeout time.Duration) Outcome
}

// DefaultWaitDelay bounds how long Run waits for output pipes after the
// process has exited or been killed.
const DefaultWaitDelay = 2 * time.Second

// CommandRunner runs commands as child processes.
type CommandRunner struct {
	logger    *zap.Logger
	waitDelay time.Duration
}

var _ Runner = (*CommandRunner)(nil)

// NewCommandRunner returns a CommandRunner. A nil logger disables logging.
func NewCommandRunner(logger *zap.Logger) *CommandRunner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CommandRunner{
		logger:    logger,
		waitDelay: DefaultWaitDelay,
	}
}

// Run starts cmd and blocks until it exits or timeout elapses. On timeout the
// process (and on unix its whole process group) is killed and an
// OutcomeTimeout is returned. A non-positive timeout means no limit.
//
// Run never panics and never retries; every failure is reported in the Outcome.
func (r *CommandRunner) Run(ctx context.Context, cmd Command, timeout time.Duration) Outcome {
	if cmd.Name == "" {
		return Outcome{
			Kind:     OutcomeSpawnError,
			ExitCode: -1,
			Err:      fmt.Errorf("%w: %w", ErrCommandSpawn, ErrEmptyCommand),
		}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = r.waitDelay
	killProcessGroup(c)

	log := r.logger.With(zap.Stringer("command", cmd), zap.String("dir", cmd.Dir))
	log.Debug("starting command", zap.Duration("timeout", timeout))

	start := time.Now()
	if err := c.Start(); err != nil {
		log.Debug("command did not start", zap.Error(err))
		return Outcome{
			Kind:     OutcomeSpawnError,
			ExitCode: -1,
			Err:      fmt.Errorf("%w: %w", ErrCommandSpawn, err),
			Duration: time.Since(start),
		}
	}

	waitErr := c.Wait()
	out := Outcome{
		Kind:     OutcomeExited,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		PID:      c.Process.Pid,
		Duration: time.Since(start),
	}
	if c.ProcessState != nil {
		out.ExitCode = c.ProcessState.ExitCode()
	}

	if waitErr != nil && ctx.Err() != nil {
		out.Kind = OutcomeTimeout
		out.ExitCode = -1
		out.Err = fmt.Errorf("%w after %s: %w", ErrCommandTimeout, timeout, ctx.Err())
		log.Warn("command timed out", zap.Duration("elapsed", out.Duration))
		return out
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		// output copy failed or pipes outlived WaitDelay; the exit status still stands
		log.Debug("command wait reported", zap.Error(waitErr))
	}

	log.Debug("command finished",
		zap.Int("exit_code", out.ExitCode),
		zap.Duration("elapsed", out.Duration),
	)

	return out
}
