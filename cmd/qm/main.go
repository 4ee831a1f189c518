package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/quarterdeck-io/quartermaster/internal/install"
	"github.com/quarterdeck-io/quartermaster/internal/messages"
)

var executeFunc = execute
var getwd = os.Getwd

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI, printing failures in red and mapping every
// failure to exit code 1.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if f, ok := stdout.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
	if err := executeFunc(args, stdout, stderr); err != nil {
		var gate *install.GateError
		if errors.As(err, &gate) {
			_, _ = fmt.Fprintln(stderr, color.RedString(messages.InstallFailedFmt, gate))
		} else {
			_, _ = fmt.Fprintln(stderr, color.RedString(messages.GenericErrorFmt, err))
		}
		exit(1)
		return
	}
	exit(0)
}

// versionString builds the full version string with commit and build date.
func versionString() string {
	details := []string{}
	if Commit != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(details) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(details, ", "))
}
