package messages

// Doctor check names, labels, and result messages.
const (
	DoctorHealthCheckFmt = "Inspecting host for a Quartermaster install from %s\n\n"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultFmt       = "%s %s: %s\n"
	DoctorRecommendFmt    = "       ↳ %s\n"

	DoctorCheckNamePrivilege = "Privilege"
	DoctorCheckNameOSFamily  = "OS family"
	DoctorCheckNamePkgMgr    = "Package manager"
	DoctorCheckNameArtifacts = "Release artifacts"
	DoctorCheckNameManifest  = "Project manifest"
	DoctorCheckNameHost      = "Host"

	DoctorPrivilegeOK           = "running as root"
	DoctorPrivilegeWarnFmt      = "not running as root (euid %d)"
	DoctorPrivilegeRecommend    = "re-run as root before 'qm install'"
	DoctorOSFamilyOKFmt         = "%s (ID=%s ID_LIKE=%s)"
	DoctorOSFamilyReadFailFmt   = "cannot read %s: %v"
	DoctorOSFamilyUnknownFmt    = "unsupported distribution (ID=%s ID_LIKE=%s)"
	DoctorOSFamilyRecommend     = "qm supports rhel-, debian-, suse-, and arch-family hosts"
	DoctorPkgMgrOKFmt           = "%s found at %s"
	DoctorPkgMgrMissingFmt      = "%s not found on PATH"
	DoctorPkgMgrRecommendFmt    = "install %s or fix PATH before 'qm install'"
	DoctorArtifactOKFmt         = "%s present"
	DoctorArtifactMissingFmt    = "%s missing from %s"
	DoctorArtifactRecommend     = "run doctor from the unpacked release directory"
	DoctorManifestOKFmt         = "%s %s"
	DoctorManifestInvalidFmt    = "cannot load %s: %v"
	DoctorManifestRecommend     = "the release archive may be corrupt; re-download it"
	DoctorHostFactsFmt          = "%s %s, %d CPUs, %s memory"
	DoctorHostFactsFailFmt      = "cannot read host facts: %v"

	DoctorFailureSummary = "Doctor found problems. Fix the failures above before installing."
	DoctorSuccessSummary = "Host looks ready for 'qm install'."
	DoctorFailureError   = "doctor checks failed"
)
