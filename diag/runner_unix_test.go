// SPDX-License-Identifier: EPL-2.0

//go:build unix

package diag

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCommandRunner_TimeoutKillsProcess(t *testing.T) {
	t.Parallel()

	out := NewCommandRunner(nil).Run(context.Background(), helperCommand("sleep", "30s"), 200*time.Millisecond)
	require.Equal(t, OutcomeTimeout, out.Kind)
	require.NotZero(t, out.PID)

	// Run has reaped the child, so signal 0 must find nothing
	err := syscall.Kill(out.PID, 0)
	require.True(t, errors.Is(err, syscall.ESRCH), "process %d still exists: %v", out.PID, err)
}
