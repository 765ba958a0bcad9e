// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audfixture/diag"
)

func (a *app) doctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the engine build, UI analysis and audio input devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.doctor(cmd)
			return nil
		},
	}
}

// doctor never fails the process; check failures are part of the report.
func (a *app) doctor(cmd *cobra.Command) {
	env := diag.Environment{
		EngineDir:    a.cfg.EngineDir,
		UIDir:        a.cfg.UIDir,
		BuildTimeout: a.cfg.BuildTimeout,
		CheckTimeout: a.cfg.CheckTimeout,
	}

	h := diag.NewHarness(a.runner, diag.DefaultChecks(env), a.logger)
	for _, note := range diag.PlatformNotes(env) {
		h.AddNote(note)
	}

	report := h.Run(cmd.Context())
	if err := report.Render(a.out); err != nil {
		a.logger.Error("write report", zap.Error(err))
	}
}
