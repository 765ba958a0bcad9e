// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"fmt"
	"runtime"
	"time"
)

// Environment locates the audio application and bounds its checks.
type Environment struct {
	EngineDir    string
	UIDir        string
	BuildTimeout time.Duration
	CheckTimeout time.Duration
	// GOOS selects the device enumeration tool; empty means runtime.GOOS.
	GOOS string
}

func (e Environment) goos() string {
	if e.GOOS == "" {
		return runtime.GOOS
	}

	return e.GOOS
}

// DefaultChecks is the fixed check sequence: engine build (gating), UI static
// analysis (advisory), audio input device enumeration (advisory).
func DefaultChecks(env Environment) []Check {
	return []Check{
		{
			Name:        "Rust engine build",
			Command:     Command{Name: "cargo", Args: []string{"build", "--release"}, Dir: env.EngineDir},
			Timeout:     env.BuildTimeout,
			Policy:      Gating,
			Expect:      ExitCode(0),
			PassMessage: "Engine builds successfully",
			FailMessage: "Engine build failed - check the output above",
		},
		{
			Name:    "Flutter analysis",
			Command: Command{Name: "flutter", Args: []string{"analyze"}, Dir: env.UIDir},
			Timeout: env.CheckTimeout,
			Policy:  Advisory,
			// flutter analyze exits non-zero on infos as well as errors
			Expect:      AnyOf(ExitCode(0), OutputContains("No issues found")),
			PassMessage: "Flutter code is clean",
			FailMessage: "Flutter might have issues",
		},
		deviceCheck(env),
	}
}

func deviceCheck(env Environment) Check {
	check := Check{
		Name:        "Audio input devices",
		Timeout:     env.CheckTimeout,
		Policy:      Advisory,
		PassMessage: "Audio input device found",
		FailMessage: "No audio input device listed",
	}

	switch env.goos() {
	case "darwin":
		check.Command = Command{Name: "system_profiler", Args: []string{"SPAudioDataType"}}
		check.Expect = AllOf(ExitCode(0), OutputContains("Input Device"))
	case "linux":
		check.Command = Command{Name: "arecord", Args: []string{"-l"}}
		check.Expect = AllOf(ExitCode(0), OutputContains("card "))
	default:
		// empty command: recorded as a spawn error
		check.FailMessage = fmt.Sprintf("No device enumeration tool known for %s", env.goos())
	}

	return check
}

// PlatformNotes returns remarks about running on a platform other than macOS.
func PlatformNotes(env Environment) []string {
	if env.goos() == "darwin" {
		return nil
	}

	return []string{
		fmt.Sprintf("This tool is designed for macOS; running on %s, so device checks and permission steps may not apply", env.goos()),
	}
}
