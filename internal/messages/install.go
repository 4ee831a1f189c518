package messages

// Installer stage progress and error messages.
const (
	InstallStagePrivilegeFmt   = "==> Checking privileges\n"
	InstallStageFamilyFmt      = "==> Detected %s host; using %s\n"
	InstallStageSystemDepsFmt  = "==> Installing system dependencies: %s\n"
	InstallStagePreflightFmt   = "==> Verifying release artifacts in %s\n"
	InstallStageAccountFmt     = "==> Creating service account %q\n"
	InstallStageRegisterFmt    = "==> Registering service unit %s\n"
	InstallStageSkeletonFmt    = "==> Creating deployment tree under %s\n"
	InstallStageRuntimeEnvFmt  = "==> Creating virtualenv at %s\n"
	InstallStageTLSFmt         = "==> Generating self-signed TLS material in %s\n"
	InstallStageDeployFmt      = "==> Staging application files into %s\n"
	InstallStageLangDepsFmt    = "==> Installing application dependencies\n"
	InstallStageStartFmt       = "==> Starting service %s\n"

	InstallSystemRequired = "install: system is required"
	InstallRunnerRequired = "install: runner is required"

	InstallPrivilegeDenied       = "must run as root (euid %d)"
	InstallReadOSReleaseErrFmt   = "read %s: %w"
	InstallUnsupportedFamilyFmt  = "no package manager profile for this host (ID=%q ID_LIKE=%q)"
	InstallIndexRefreshErrFmt    = "refresh package index with %s: %w"
	InstallPackagesErrFmt        = "install packages with %s: %w"
	InstallArtifactMissingFmt    = "required artifact %s: %w"
	InstallArtifactNotDirFmt     = "required artifact %s is not a directory"
	InstallManifestInvalidFmt    = "project manifest %s: %w"
	InstallCreateAccountErrFmt   = "create service account %s: %w"
	InstallCopyUnitErrFmt        = "copy service unit to %s: %w"
	InstallDaemonReloadErrFmt    = "reload service manager: %w"
	InstallEnableServiceErrFmt   = "enable service %s: %w"
	InstallCreateDirErrFmt       = "create directory %s: %w"
	InstallCreateLogFileErrFmt   = "create log file %s: %w"
	InstallCreateVenvErrFmt      = "create virtualenv %s: %w"
	InstallGenerateTLSErrFmt     = "generate TLS material: %w"
	InstallCopyArtifactErrFmt    = "copy %s to %s: %w"
	InstallChownErrFmt           = "set ownership of %s to %s: %w"
	InstallPipInstallErrFmt      = "install dependency resolver: %w"
	InstallPoetryLockErrFmt      = "lock dependency graph: %w"
	InstallPoetryInstallErrFmt   = "install main dependency group: %w"
	InstallStartServiceErrFmt    = "start service %s: %w"
	InstallStatusCheckWarnFmt    = "Warning: service %s did not report active after start: %v\n"
)
