// Package install implements the host bootstrap pipeline: a fail-fast
// sequence of gates and side-effecting stages that turns a bare Linux
// machine into a running Quartermaster instance.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quarterdeck-io/quartermaster/internal/messages"
	"github.com/quarterdeck-io/quartermaster/internal/osrelease"
	"github.com/quarterdeck-io/quartermaster/internal/pkgmgr"
	"github.com/quarterdeck-io/quartermaster/internal/shell"
)

// Stage names reported in GateError.Stage.
const (
	StagePrivilege     = "privilege check"
	StageSelectProfile = "package manager selection"
	StageSystemDeps    = "system dependency install"
	StagePreflight     = "preflight file check"
	StageAccount       = "service account"
	StageRegister      = "service registration"
	StageSkeleton      = "filesystem skeleton"
	StageRuntimeEnv    = "runtime environment"
	StageTLS           = "TLS material"
	StageDeploy        = "application deploy"
	StageLangDeps      = "language dependency install"
	StageStart         = "service start"
)

// Deps are the collaborators the pipeline drives. System covers direct
// host mutation, Runner covers external processes; both must be set.
type Deps struct {
	System System
	Runner shell.Runner
	// Out receives stage progress lines; ErrOut receives advisory warnings.
	Out    io.Writer
	ErrOut io.Writer
}

type installer struct {
	cfg     Config
	sys     System
	runner  shell.Runner
	out     io.Writer
	errOut  io.Writer
	profile pkgmgr.Profile
}

// Run executes the full pipeline against the host. Each stage gates the
// next: the first failure aborts the run with a *GateError and nothing
// is rolled back. Re-running against an already provisioned host is not
// supported and will fail at account or directory creation.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	if deps.System == nil {
		return errors.New(messages.InstallSystemRequired)
	}
	if deps.Runner == nil {
		return errors.New(messages.InstallRunnerRequired)
	}
	out := deps.Out
	if out == nil {
		out = io.Discard
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	inst := &installer{cfg: cfg, sys: deps.System, runner: deps.Runner, out: out, errOut: errOut}

	if err := inst.checkPrivilege(); err != nil {
		return err
	}
	if err := inst.selectProfile(); err != nil {
		return err
	}
	stages := []func(context.Context) error{
		inst.installSystemPackages,
		inst.preflightFiles,
		inst.createServiceAccount,
		inst.registerService,
		inst.buildSkeleton,
		inst.createRuntimeEnv,
		inst.generateTLSMaterial,
		inst.deployApplication,
		inst.installLanguageDeps,
		inst.startService,
	}
	for _, stage := range stages {
		if err := stage(ctx); err != nil {
			return err
		}
	}
	return nil
}

// checkPrivilege gates the entire run: every later stage needs root,
// including the package installs, so this is evaluated first.
func (inst *installer) checkPrivilege() error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStagePrivilegeFmt)
	euid := inst.sys.Geteuid()
	if euid != 0 {
		return gateErr(ReasonPrivilegeDenied, StagePrivilege, fmt.Errorf(messages.InstallPrivilegeDenied, euid))
	}
	return nil
}

// selectProfile resolves the host's distribution family and binds the
// matching package manager profile. An unknown family is terminal; no
// host state has been touched yet.
func (inst *installer) selectProfile() error {
	family, id, idLike, err := osrelease.Detect(inst.sys, inst.cfg.OSReleasePath)
	if err != nil {
		return gateErr(ReasonUnsupportedOSFamily, StageSelectProfile,
			fmt.Errorf(messages.InstallReadOSReleaseErrFmt, inst.cfg.OSReleasePath, err))
	}
	profile, ok := pkgmgr.ProfileFor(family)
	if !ok {
		return gateErr(ReasonUnsupportedOSFamily, StageSelectProfile,
			fmt.Errorf(messages.InstallUnsupportedFamilyFmt, id, idLike))
	}
	inst.profile = profile
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageFamilyFmt, family, profile.Name)
	return nil
}

func (inst *installer) installSystemPackages(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageSystemDepsFmt, strings.Join(inst.profile.Packages, " "))
	update := shell.Command{Name: inst.profile.Name, Args: inst.profile.UpdateArgs()}
	if err := inst.runner.Run(ctx, update); err != nil {
		return gateErr(ReasonPackageInstallFailure, StageSystemDeps,
			fmt.Errorf(messages.InstallIndexRefreshErrFmt, inst.profile.Name, err))
	}
	installCmd := shell.Command{Name: inst.profile.Name, Args: inst.profile.InstallArgs()}
	if err := inst.runner.Run(ctx, installCmd); err != nil {
		return gateErr(ReasonPackageInstallFailure, StageSystemDeps,
			fmt.Errorf(messages.InstallPackagesErrFmt, inst.profile.Name, err))
	}
	return nil
}

// preflightFiles verifies every release artifact the later stages will
// consume. It runs after the system install (so the tools those stages
// need exist) and before any host mutation.
func (inst *installer) preflightFiles(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStagePreflightFmt, inst.cfg.WorkDir)
	for _, name := range []string{
		inst.cfg.UnitFile,
		inst.cfg.ManifestFile,
		inst.cfg.LockFile,
		inst.cfg.RuntimeConfigFile,
		inst.cfg.LauncherFile,
	} {
		path := filepath.Join(inst.cfg.WorkDir, name)
		if _, err := inst.sys.Stat(path); err != nil {
			return gateErr(ReasonMissingInstallationFiles, StagePreflight,
				fmt.Errorf(messages.InstallArtifactMissingFmt, name, err))
		}
	}
	srcPath := filepath.Join(inst.cfg.WorkDir, inst.cfg.SourceDir)
	info, err := inst.sys.Stat(srcPath)
	if err != nil {
		return gateErr(ReasonMissingInstallationFiles, StagePreflight,
			fmt.Errorf(messages.InstallArtifactMissingFmt, inst.cfg.SourceDir, err))
	}
	if !info.IsDir() {
		return gateErr(ReasonMissingInstallationFiles, StagePreflight,
			fmt.Errorf(messages.InstallArtifactNotDirFmt, inst.cfg.SourceDir))
	}
	manifestPath := filepath.Join(inst.cfg.WorkDir, inst.cfg.ManifestFile)
	if err := inst.validateManifest(manifestPath); err != nil {
		return gateErr(ReasonMissingInstallationFiles, StagePreflight,
			fmt.Errorf(messages.InstallManifestInvalidFmt, inst.cfg.ManifestFile, err))
	}
	return nil
}

// createServiceAccount provisions the unprivileged identity that owns
// the deployed files and runs the service. Failure is fatal: every
// later ownership fix-up depends on the account existing.
func (inst *installer) createServiceAccount(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageAccountFmt, inst.cfg.AccountName)
	cmd := shell.Command{
		Name: "useradd",
		Args: []string{"--system", "--no-create-home", "--shell", "/usr/sbin/nologin", inst.cfg.AccountName},
	}
	if err := inst.runner.Run(ctx, cmd); err != nil {
		return gateErr(ReasonProvisionFailure, StageAccount,
			fmt.Errorf(messages.InstallCreateAccountErrFmt, inst.cfg.AccountName, err))
	}
	return nil
}

// registerService installs the unit descriptor and enables it so the
// service starts on boot. The actual start happens last, after the
// payload and its dependencies are in place.
func (inst *installer) registerService(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageRegisterFmt, inst.cfg.UnitFile)
	src := filepath.Join(inst.cfg.WorkDir, inst.cfg.UnitFile)
	dst := filepath.Join(inst.cfg.SystemdDir, inst.cfg.UnitFile)
	if err := inst.sys.CopyFile(src, dst); err != nil {
		return gateErr(ReasonProvisionFailure, StageRegister,
			fmt.Errorf(messages.InstallCopyUnitErrFmt, dst, err))
	}
	if err := inst.runner.Run(ctx, shell.Command{Name: "systemctl", Args: []string{"daemon-reload"}}); err != nil {
		return gateErr(ReasonProvisionFailure, StageRegister,
			fmt.Errorf(messages.InstallDaemonReloadErrFmt, err))
	}
	enable := shell.Command{Name: "systemctl", Args: []string{"enable", inst.cfg.ServiceName}}
	if err := inst.runner.Run(ctx, enable); err != nil {
		return gateErr(ReasonProvisionFailure, StageRegister,
			fmt.Errorf(messages.InstallEnableServiceErrFmt, inst.cfg.ServiceName, err))
	}
	return nil
}

func (inst *installer) buildSkeleton(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageSkeletonFmt, inst.cfg.Paths.RootDir)
	for _, dir := range []string{inst.cfg.Paths.RootDir, inst.cfg.Paths.LogDir, inst.cfg.Paths.SSLDir} {
		if err := inst.sys.MkdirAll(dir, 0o755); err != nil {
			return gateErr(ReasonProvisionFailure, StageSkeleton,
				fmt.Errorf(messages.InstallCreateDirErrFmt, dir, err))
		}
	}
	for _, name := range []string{appLogFile, errorLogFile} {
		path := filepath.Join(inst.cfg.Paths.LogDir, name)
		if err := inst.sys.WriteFile(path, nil, 0o644); err != nil {
			return gateErr(ReasonProvisionFailure, StageSkeleton,
				fmt.Errorf(messages.InstallCreateLogFileErrFmt, path, err))
		}
	}
	return nil
}

func (inst *installer) createRuntimeEnv(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageRuntimeEnvFmt, inst.cfg.Paths.VenvDir)
	cmd := shell.Command{Name: "python3", Args: []string{"-m", "venv", inst.cfg.Paths.VenvDir}}
	if err := inst.runner.Run(ctx, cmd); err != nil {
		return gateErr(ReasonProvisionFailure, StageRuntimeEnv,
			fmt.Errorf(messages.InstallCreateVenvErrFmt, inst.cfg.Paths.VenvDir, err))
	}
	return nil
}

// generateTLSMaterial writes bootstrap key material. Operators are
// expected to replace it with a properly issued certificate; qm does
// not validate or rotate it.
func (inst *installer) generateTLSMaterial(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageTLSFmt, inst.cfg.Paths.SSLDir)
	cmd := shell.Command{
		Name: "openssl",
		Args: []string{
			"req", "-x509", "-newkey", "rsa:4096", "-nodes",
			"-days", tlsValidityDays,
			"-subj", tlsSubject,
			"-keyout", filepath.Join(inst.cfg.Paths.SSLDir, keyFile),
			"-out", filepath.Join(inst.cfg.Paths.SSLDir, certFile),
		},
	}
	if err := inst.runner.Run(ctx, cmd); err != nil {
		return gateErr(ReasonProvisionFailure, StageTLS,
			fmt.Errorf(messages.InstallGenerateTLSErrFmt, err))
	}
	return nil
}

// deployApplication stages the payload into the deployment root. The
// ownership fix-up runs once at the end, after every file is in place.
func (inst *installer) deployApplication(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageDeployFmt, inst.cfg.Paths.RootDir)
	for _, name := range []string{
		inst.cfg.ManifestFile,
		inst.cfg.LockFile,
		inst.cfg.RuntimeConfigFile,
		inst.cfg.LauncherFile,
	} {
		src := filepath.Join(inst.cfg.WorkDir, name)
		dst := filepath.Join(inst.cfg.Paths.RootDir, name)
		if err := inst.sys.CopyFile(src, dst); err != nil {
			return gateErr(ReasonProvisionFailure, StageDeploy,
				fmt.Errorf(messages.InstallCopyArtifactErrFmt, name, dst, err))
		}
	}
	src := filepath.Join(inst.cfg.WorkDir, inst.cfg.SourceDir)
	dst := filepath.Join(inst.cfg.Paths.RootDir, inst.cfg.SourceDir)
	if err := inst.sys.CopyTree(src, dst); err != nil {
		return gateErr(ReasonProvisionFailure, StageDeploy,
			fmt.Errorf(messages.InstallCopyArtifactErrFmt, inst.cfg.SourceDir, dst, err))
	}
	owner := inst.cfg.AccountName + ":" + inst.cfg.AccountName
	chown := shell.Command{Name: "chown", Args: []string{"-R", owner, inst.cfg.Paths.RootDir}}
	if err := inst.runner.Run(ctx, chown); err != nil {
		return gateErr(ReasonProvisionFailure, StageDeploy,
			fmt.Errorf(messages.InstallChownErrFmt, inst.cfg.Paths.RootDir, owner, err))
	}
	return nil
}

// installLanguageDeps installs the resolver into the virtualenv, locks
// the dependency graph, and installs only the main group without the
// project's own package.
func (inst *installer) installLanguageDeps(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageLangDepsFmt)
	pip := filepath.Join(inst.cfg.Paths.VenvDir, "bin", "pip")
	poetry := filepath.Join(inst.cfg.Paths.VenvDir, "bin", "poetry")

	if err := inst.runner.Run(ctx, shell.Command{Name: pip, Args: []string{"install", "poetry"}}); err != nil {
		return gateErr(ReasonDependencyInstallFailure, StageLangDeps,
			fmt.Errorf(messages.InstallPipInstallErrFmt, err))
	}
	lock := shell.Command{Name: poetry, Args: []string{"lock"}, Dir: inst.cfg.Paths.RootDir}
	if err := inst.runner.Run(ctx, lock); err != nil {
		return gateErr(ReasonDependencyInstallFailure, StageLangDeps,
			fmt.Errorf(messages.InstallPoetryLockErrFmt, err))
	}
	installCmd := shell.Command{
		Name: poetry,
		Args: []string{"install", "--only", "main", "--no-root"},
		Dir:  inst.cfg.Paths.RootDir,
	}
	if err := inst.runner.Run(ctx, installCmd); err != nil {
		return gateErr(ReasonDependencyInstallFailure, StageLangDeps,
			fmt.Errorf(messages.InstallPoetryInstallErrFmt, err))
	}
	return nil
}

// startService starts the registered unit. The start command is
// authoritative; the post-start is-active probe is advisory and only
// produces a warning, never a failure.
func (inst *installer) startService(ctx context.Context) error {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageStartFmt, inst.cfg.ServiceName)
	start := shell.Command{Name: "systemctl", Args: []string{"start", inst.cfg.ServiceName}}
	if err := inst.runner.Run(ctx, start); err != nil {
		return gateErr(ReasonProvisionFailure, StageStart,
			fmt.Errorf(messages.InstallStartServiceErrFmt, inst.cfg.ServiceName, err))
	}
	probe := shell.Command{Name: "systemctl", Args: []string{"is-active", inst.cfg.ServiceName}}
	state, err := inst.runner.Output(ctx, probe)
	if err != nil {
		_, _ = fmt.Fprintf(inst.errOut, messages.InstallStatusCheckWarnFmt, inst.cfg.ServiceName, err)
	} else if state != "active" {
		_, _ = fmt.Fprintf(inst.errOut, messages.InstallStatusCheckWarnFmt, inst.cfg.ServiceName,
			fmt.Errorf("state %q", state))
	}
	return nil
}
