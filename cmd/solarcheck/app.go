// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audfixture/diag"
	"github.com/ik5/audfixture/internal/config"
)

const banner = "============================================================"

type app struct {
	cfg    config.Config
	logger *zap.Logger
	runner diag.Runner
	out    io.Writer
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "solarcheck",
		Short:         "Audio test fixture generator and recording diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)

	root.AddCommand(a.genWavCommand(), a.doctorCommand())

	return root
}
