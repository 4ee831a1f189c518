package install

import "fmt"

// Reason classifies why the pipeline aborted. Exactly one reason is
// reported per failed run; the pipeline never continues past a gate.
type Reason int

const (
	// ReasonPrivilegeDenied: the process is not running as root.
	ReasonPrivilegeDenied Reason = iota + 1
	// ReasonUnsupportedOSFamily: no package manager profile matches the host.
	ReasonUnsupportedOSFamily
	// ReasonPackageInstallFailure: the package index refresh or install failed.
	ReasonPackageInstallFailure
	// ReasonMissingInstallationFiles: a required release artifact is absent or unusable.
	ReasonMissingInstallationFiles
	// ReasonProvisionFailure: a side-effecting stage (account, unit, skeleton,
	// venv, TLS, deploy, service start) failed.
	ReasonProvisionFailure
	// ReasonDependencyInstallFailure: resolving or installing the application's
	// dependency group failed.
	ReasonDependencyInstallFailure
)

// String returns the human-readable reason tag.
func (r Reason) String() string {
	switch r {
	case ReasonPrivilegeDenied:
		return "privilege denied"
	case ReasonUnsupportedOSFamily:
		return "unsupported OS family"
	case ReasonPackageInstallFailure:
		return "package install failure"
	case ReasonMissingInstallationFiles:
		return "missing installation files"
	case ReasonProvisionFailure:
		return "provisioning failure"
	case ReasonDependencyInstallFailure:
		return "dependency install failure"
	default:
		return "unknown failure"
	}
}

// GateError is the structured failure carried out of the pipeline: the
// stage that failed, its classification, and the underlying error.
type GateError struct {
	Reason Reason
	Stage  string
	Err    error
}

// Error implements the error interface.
func (e *GateError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Reason, e.Err)
}

// Unwrap returns the underlying error.
func (e *GateError) Unwrap() error {
	return e.Err
}

func gateErr(reason Reason, stage string, err error) *GateError {
	return &GateError{Reason: reason, Stage: stage, Err: err}
}
