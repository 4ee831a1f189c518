package install

import "path/filepath"

// Fixed deployment layout. The tree is not configurable per run; tests
// override Config fields directly.
const (
	DefaultRootDir       = "/opt/quartermaster"
	DefaultOSReleasePath = "/etc/os-release"
	DefaultSystemdDir    = "/etc/systemd/system"

	appLogFile   = "quartermaster.log"
	errorLogFile = "quartermaster.error.log"
	certFile     = "quartermaster.crt"
	keyFile      = "quartermaster.key"

	tlsSubject      = "/C=US/ST=None/L=None/O=Quartermaster/CN=localhost"
	tlsValidityDays = "365"
)

// Paths is the deployment directory tree created on the host.
type Paths struct {
	RootDir string
	LogDir  string
	SSLDir  string
	VenvDir string
}

// Config is the immutable per-run configuration. It is constructed once
// and passed to every stage; stages never read ambient process state.
type Config struct {
	// WorkDir is the invocation directory holding the release artifacts.
	WorkDir string

	OSReleasePath string
	SystemdDir    string

	ServiceName string
	AccountName string

	// Release artifact names, relative to WorkDir.
	UnitFile          string
	ManifestFile      string
	LockFile          string
	SourceDir         string
	RuntimeConfigFile string
	LauncherFile      string

	Paths Paths
}

// DefaultConfig returns the production configuration with workDir as
// the invocation directory.
func DefaultConfig(workDir string) Config {
	return Config{
		WorkDir:           workDir,
		OSReleasePath:     DefaultOSReleasePath,
		SystemdDir:        DefaultSystemdDir,
		ServiceName:       "quartermaster",
		AccountName:       "quartermaster",
		UnitFile:          "quartermaster.service",
		ManifestFile:      "pyproject.toml",
		LockFile:          "poetry.lock",
		SourceDir:         "src",
		RuntimeConfigFile: "quartermaster.toml",
		LauncherFile:      "run.sh",
		Paths: Paths{
			RootDir: DefaultRootDir,
			LogDir:  filepath.Join(DefaultRootDir, "logs"),
			SSLDir:  filepath.Join(DefaultRootDir, "ssl"),
			VenvDir: filepath.Join(DefaultRootDir, "venv"),
		},
	}
}
