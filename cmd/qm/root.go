package main

import (
	"github.com/spf13/cobra"

	"github.com/quarterdeck-io/quartermaster/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}
