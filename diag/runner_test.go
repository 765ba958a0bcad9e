// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// helperCommand re-runs the test binary as a child that behaves according to mode.
func helperCommand(mode string, args ...string) Command {
	return Command{
		Name: os.Args[0],
		Args: append([]string{"-test.run=^TestHelperProcess$", "--", mode}, args...),
		Env:  []string{"DIAG_WANT_HELPER_PROCESS=1"},
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("DIAG_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "missing helper mode")
		os.Exit(2)
	}

	mode, rest := args[1], args[2:]
	switch mode {
	case "exit":
		code, _ := strconv.Atoi(rest[0])
		os.Exit(code)
	case "echo":
		fmt.Fprint(os.Stdout, rest[0])
		fmt.Fprint(os.Stderr, rest[1])
		os.Exit(0)
	case "env":
		fmt.Fprint(os.Stdout, os.Getenv(rest[0]))
		os.Exit(0)
	case "sleep":
		d, _ := time.ParseDuration(rest[0])
		time.Sleep(d)
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "unknown helper mode %q\n", mode)
	os.Exit(2)
}

func TestCommandRunner_ExitZero(t *testing.T) {
	t.Parallel()

	out := NewCommandRunner(zaptest.NewLogger(t)).Run(context.Background(), helperCommand("echo", "hello out", "hello err"), 30*time.Second)

	require.Equal(t, OutcomeExited, out.Kind, "err: %v", out.Err)
	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "hello out", out.Stdout)
	assert.Equal(t, "hello err", out.Stderr)
	assert.NoError(t, out.Err)
	assert.NotZero(t, out.PID)
	assert.True(t, out.Exited(0))
}

func TestCommandRunner_NonZeroExit(t *testing.T) {
	t.Parallel()

	out := NewCommandRunner(nil).Run(context.Background(), helperCommand("exit", "3"), 30*time.Second)

	require.Equal(t, OutcomeExited, out.Kind, "err: %v", out.Err)
	assert.Equal(t, 3, out.ExitCode)
	assert.NoError(t, out.Err)
	assert.False(t, out.Exited(0))
}

func TestCommandRunner_Env(t *testing.T) {
	t.Parallel()

	cmd := helperCommand("env", "DIAG_TEST_VALUE")
	cmd.Env = append(cmd.Env, "DIAG_TEST_VALUE=from-parent")

	out := NewCommandRunner(nil).Run(context.Background(), cmd, 30*time.Second)

	require.Equal(t, OutcomeExited, out.Kind, "err: %v", out.Err)
	assert.Equal(t, "from-parent", out.Stdout)
}

func TestCommandRunner_Timeout(t *testing.T) {
	t.Parallel()

	start := time.Now()
	out := NewCommandRunner(nil).Run(context.Background(), helperCommand("sleep", "30s"), 300*time.Millisecond)
	elapsed := time.Since(start)

	require.Equal(t, OutcomeTimeout, out.Kind)
	assert.ErrorIs(t, out.Err, ErrCommandTimeout)
	assert.Equal(t, -1, out.ExitCode)
	assert.Less(t, elapsed, 10*time.Second, "Run must return soon after the timeout")
}

func TestCommandRunner_ParentContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	out := NewCommandRunner(nil).Run(ctx, helperCommand("sleep", "30s"), 0)

	require.Equal(t, OutcomeTimeout, out.Kind)
	assert.ErrorIs(t, out.Err, context.Canceled)
}

func TestCommandRunner_SpawnErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     Command
		wantErr error
	}{
		{"empty command", Command{}, ErrEmptyCommand},
		{"missing executable", Command{Name: "definitely-not-a-real-tool-7f3a"}, ErrCommandSpawn},
		{"missing directory", Command{Name: os.Args[0], Dir: filepath.Join(os.TempDir(), "no-such-dir-7f3a", "x")}, ErrCommandSpawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := NewCommandRunner(nil).Run(context.Background(), tt.cmd, time.Second)

			assert.Equal(t, OutcomeSpawnError, out.Kind)
			assert.ErrorIs(t, out.Err, tt.wantErr)
			assert.ErrorIs(t, out.Err, ErrCommandSpawn)
			assert.Zero(t, out.PID)
		})
	}
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cargo build --release", Command{Name: "cargo", Args: []string{"build", "--release"}}.String())
	assert.Equal(t, "flutter", Command{Name: "flutter"}.String())
}

func TestOutcome_Output(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb", Outcome{Stdout: "a", Stderr: "b"}.Output())
	assert.Equal(t, "a", Outcome{Stdout: "a"}.Output())
	assert.Equal(t, "b", Outcome{Stderr: "b"}.Output())
}

func TestOutcomeKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exited", OutcomeExited.String())
	assert.Equal(t, "timeout", OutcomeTimeout.String())
	assert.Equal(t, "spawn error", OutcomeSpawnError.String())
}
