package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "qm"
	// RootShort is the short description for the root command.
	RootShort = "Quartermaster host bootstrap CLI"
	RootLong  = "qm provisions a bare Linux host to run the Quartermaster panel:\n" +
		"it installs system dependencies, creates the service account and\n" +
		"deployment tree, generates bootstrap TLS material, stages the panel\n" +
		"payload, and registers the systemd service."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Provision this host and start the Quartermaster service"
	InstallLong  = "install runs the full bootstrap pipeline against this host. It must\n" +
		"be run as root from the directory that holds the release artifacts\n" +
		"(service unit, pyproject.toml, poetry.lock, src/, runtime config,\n" +
		"launcher). The pipeline is fail-fast and performs no rollback."

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Inspect this host without changing it"

	InstallFailedFmt = "installation failed: %v"
	InstallSucceeded = "Quartermaster installed; service enabled and started."
	WorkingDirErrFmt = "resolve working directory: %w"
	GenericErrorFmt  = "Error: %v"
)
