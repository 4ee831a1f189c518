package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quarterdeck-io/quartermaster/internal/doctor"
	"github.com/quarterdeck-io/quartermaster/internal/install"
	"github.com/quarterdeck-io/quartermaster/internal/messages"
)

var runChecks = doctor.RunChecks

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			workDir, err := getwd()
			if err != nil {
				return fmt.Errorf(messages.WorkingDirErrFmt, err)
			}
			cfg := install.DefaultConfig(workDir)
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, workDir)

			results := runChecks(doctor.RealSystem{}, cfg)
			for _, r := range results {
				printResult(out, r)
			}
			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var label string
	switch r.Status {
	case doctor.StatusOK:
		label = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		label = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		label = color.RedString(messages.DoctorStatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultFmt, label, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendFmt, r.Recommendation)
	}
}
