package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quarterdeck-io/quartermaster/internal/install"
	"github.com/quarterdeck-io/quartermaster/internal/messages"
	"github.com/quarterdeck-io/quartermaster/internal/shell"
)

var installRun = install.Run

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := getwd()
			if err != nil {
				return fmt.Errorf(messages.WorkingDirErrFmt, err)
			}
			cfg := install.DefaultConfig(workDir)
			deps := install.Deps{
				System: install.RealSystem{},
				Runner: shell.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				Out:    cmd.OutOrStdout(),
				ErrOut: cmd.ErrOrStderr(),
			}
			if err := installRun(cmd.Context(), cfg, deps); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(messages.InstallSucceeded))
			return nil
		},
	}
}
