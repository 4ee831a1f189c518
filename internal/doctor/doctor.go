// Package doctor inspects a host for Quartermaster installability
// without mutating it.
package doctor

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Status is the outcome of a single check.
type Status int

// Check outcomes. Warn does not block installation; Fail does.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one check outcome with an optional remediation hint.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// System abstracts the read-only host access doctor needs.
type System interface {
	Geteuid() int
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	LookPath(name string) (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Geteuid returns the effective user id of the calling process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LookPath searches PATH for an executable.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
