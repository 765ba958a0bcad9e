// SPDX-License-Identifier: EPL-2.0

//go:build unix

package diag

import (
	"os/exec"
	"syscall"
)

// killProcessGroup puts the child in its own process group and makes context
// cancellation kill the whole group, so tools that fork workers do not
// outlive a timeout.
func killProcessGroup(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		return syscall.Kill(-c.Process.Pid, syscall.SIGKILL)
	}
}
