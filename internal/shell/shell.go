// Package shell runs external commands for the provisioning stages.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external process invocation. Dir, when
// set, is the working directory for the process.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line for progress output and errors.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner abstracts process execution so stages can be tested without
// touching the host. Implementations block until the process exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner implements Runner with os/exec, streaming the child's
// output to the configured writers.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and waits for it to exit.
func (r ExecRunner) Run(ctx context.Context, cmd Command) error {
	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.Dir
	proc.Stdout = r.stdout()
	proc.Stderr = r.stderr()
	if err := proc.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

// Output executes the command and returns its trimmed standard output.
func (r ExecRunner) Output(ctx context.Context, cmd Command) (string, error) {
	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.Dir
	proc.Stderr = r.stderr()
	out, err := proc.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (r ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
