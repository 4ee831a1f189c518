// Package pkgmgr maps a distribution family to the command vocabulary
// of its package manager.
package pkgmgr

import (
	"github.com/quarterdeck-io/quartermaster/internal/osrelease"
)

// Profile is the distro-specific vocabulary needed to drive system
// package installation: the binary, its verbs, the flag that suppresses
// interactive prompts, and the packages qm needs on the host.
type Profile struct {
	Name          string
	InstallVerb   string
	UpdateVerb    string
	NoConfirmFlag string
	Packages      []string
}

// The package sets are semantically equivalent across families: a
// privilege-escalation tool, a venv-capable Python, a hardware
// inventory utility, and a TLS toolkit. SUSE and Arch additionally
// need a cron daemon because it is not preinstalled there.
var profiles = map[osrelease.Family]Profile{
	osrelease.FamilyRHEL: {
		Name:          "dnf",
		InstallVerb:   "install",
		UpdateVerb:    "makecache",
		NoConfirmFlag: "-y",
		Packages:      []string{"sudo", "python3", "lshw", "openssl"},
	},
	osrelease.FamilyDebian: {
		Name:          "apt-get",
		InstallVerb:   "install",
		UpdateVerb:    "update",
		NoConfirmFlag: "-y",
		Packages:      []string{"sudo", "python3-venv", "lshw", "openssl"},
	},
	osrelease.FamilySUSE: {
		Name:          "zypper",
		InstallVerb:   "install",
		UpdateVerb:    "refresh",
		NoConfirmFlag: "-y",
		Packages:      []string{"sudo", "python3", "lshw", "openssl", "cronie"},
	},
	osrelease.FamilyArch: {
		Name:          "pacman",
		InstallVerb:   "-S",
		UpdateVerb:    "-Sy",
		NoConfirmFlag: "--noconfirm",
		Packages:      []string{"sudo", "python", "lshw", "openssl", "cronie"},
	},
}

// ProfileFor returns the profile for a family. The second return is
// false for FamilyUnknown, which has no profile.
func ProfileFor(family osrelease.Family) (Profile, bool) {
	profile, ok := profiles[family]
	return profile, ok
}

// UpdateArgs builds the argument list that refreshes the package index.
func (p Profile) UpdateArgs() []string {
	return []string{p.UpdateVerb, p.NoConfirmFlag}
}

// InstallArgs builds the argument list that installs the profile's
// package set without prompting.
func (p Profile) InstallArgs() []string {
	args := []string{p.InstallVerb, p.NoConfirmFlag}
	return append(args, p.Packages...)
}
