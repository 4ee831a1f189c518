package doctor

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/quarterdeck-io/quartermaster/internal/install"
	"github.com/quarterdeck-io/quartermaster/internal/manifest"
	"github.com/quarterdeck-io/quartermaster/internal/messages"
	"github.com/quarterdeck-io/quartermaster/internal/osrelease"
	"github.com/quarterdeck-io/quartermaster/internal/pkgmgr"
)

var (
	hostInfoFunc      = host.Info
	cpuCountsFunc     = cpu.Counts
	virtualMemoryFunc = mem.VirtualMemory
)

// CheckPrivilege reports whether the process runs as root. Doctor only
// warns here: inspection works unprivileged, installation does not.
func CheckPrivilege(sys System) Result {
	euid := sys.Geteuid()
	if euid != 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePrivilege,
			Message:        fmt.Sprintf(messages.DoctorPrivilegeWarnFmt, euid),
			Recommendation: messages.DoctorPrivilegeRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePrivilege,
		Message:   messages.DoctorPrivilegeOK,
	}
}

// CheckOSFamily resolves the host's distribution family. The returned
// family lets the caller run the package manager check when known.
func CheckOSFamily(sys System, path string) (Result, osrelease.Family) {
	family, id, idLike, err := osrelease.Detect(sys, path)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOSFamily,
			Message:        fmt.Sprintf(messages.DoctorOSFamilyReadFailFmt, path, err),
			Recommendation: messages.DoctorOSFamilyRecommend,
		}, family
	}
	if family == osrelease.FamilyUnknown {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOSFamily,
			Message:        fmt.Sprintf(messages.DoctorOSFamilyUnknownFmt, id, idLike),
			Recommendation: messages.DoctorOSFamilyRecommend,
		}, family
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameOSFamily,
		Message:   fmt.Sprintf(messages.DoctorOSFamilyOKFmt, family, id, idLike),
	}, family
}

// CheckPackageManager verifies the family's package manager binary is
// on PATH.
func CheckPackageManager(sys System, family osrelease.Family) Result {
	profile, ok := pkgmgr.ProfileFor(family)
	if !ok {
		// Unknown family is already a failed OS family check.
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNamePkgMgr,
			Message:   fmt.Sprintf(messages.DoctorOSFamilyUnknownFmt, "", ""),
		}
	}
	path, err := sys.LookPath(profile.Name)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePkgMgr,
			Message:        fmt.Sprintf(messages.DoctorPkgMgrMissingFmt, profile.Name),
			Recommendation: fmt.Sprintf(messages.DoctorPkgMgrRecommendFmt, profile.Name),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePkgMgr,
		Message:   fmt.Sprintf(messages.DoctorPkgMgrOKFmt, profile.Name, path),
	}
}

// CheckArtifacts verifies every release artifact the installer's
// preflight gate will demand.
func CheckArtifacts(sys System, cfg install.Config) []Result {
	var results []Result
	for _, name := range []string{
		cfg.UnitFile,
		cfg.ManifestFile,
		cfg.LockFile,
		cfg.RuntimeConfigFile,
		cfg.LauncherFile,
		cfg.SourceDir,
	} {
		if _, err := sys.Stat(filepath.Join(cfg.WorkDir, name)); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameArtifacts,
				Message:        fmt.Sprintf(messages.DoctorArtifactMissingFmt, name, cfg.WorkDir),
				Recommendation: messages.DoctorArtifactRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameArtifacts,
			Message:   fmt.Sprintf(messages.DoctorArtifactOKFmt, name),
		})
	}
	return results
}

// CheckManifest loads the project manifest and reports the payload's
// declared name and version.
func CheckManifest(sys System, cfg install.Config) Result {
	path := filepath.Join(cfg.WorkDir, cfg.ManifestFile)
	m, err := manifest.Load(sys, path)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestInvalidFmt, cfg.ManifestFile, err),
			Recommendation: messages.DoctorManifestRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestOKFmt, m.Name(), m.Version()),
	}
}

// CheckHostFacts reports platform, CPU, and memory facts. Failures are
// advisory; they never block an install.
func CheckHostFacts() Result {
	info, err := hostInfoFunc()
	if err != nil {
		return hostFactsWarn(err)
	}
	cpus, err := cpuCountsFunc(true)
	if err != nil {
		return hostFactsWarn(err)
	}
	vm, err := virtualMemoryFunc()
	if err != nil {
		return hostFactsWarn(err)
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameHost,
		Message: fmt.Sprintf(messages.DoctorHostFactsFmt,
			info.Platform, info.PlatformVersion, cpus, humanize.IBytes(vm.Total)),
	}
}

func hostFactsWarn(err error) Result {
	return Result{
		Status:    StatusWarn,
		CheckName: messages.DoctorCheckNameHost,
		Message:   fmt.Sprintf(messages.DoctorHostFactsFailFmt, err),
	}
}

// RunChecks runs every doctor check in order and returns the results.
func RunChecks(sys System, cfg install.Config) []Result {
	results := []Result{CheckPrivilege(sys)}
	familyResult, family := CheckOSFamily(sys, cfg.OSReleasePath)
	results = append(results, familyResult)
	if family != osrelease.FamilyUnknown {
		results = append(results, CheckPackageManager(sys, family))
	}
	results = append(results, CheckArtifacts(sys, cfg)...)
	results = append(results, CheckManifest(sys, cfg))
	results = append(results, CheckHostFacts())
	return results
}
