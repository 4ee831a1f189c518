// Package osrelease resolves the host's distribution family from
// os-release identification data.
package osrelease

import (
	"os"
	"strings"
)

// Family is the closed set of distribution families qm can provision.
type Family int

// Supported distribution families. FamilyUnknown means the host cannot
// be matched to a package manager profile.
const (
	FamilyUnknown Family = iota
	FamilyRHEL
	FamilyDebian
	FamilySUSE
	FamilyArch
)

// String returns the lowercase family tag.
func (f Family) String() string {
	switch f {
	case FamilyRHEL:
		return "rhel"
	case FamilyDebian:
		return "debian"
	case FamilySUSE:
		return "suse"
	case FamilyArch:
		return "arch"
	default:
		return "unknown"
	}
}

// familyKeywords is matched in order; the first keyword contained in the
// normalized ID/ID_LIKE token string wins.
var familyKeywords = []struct {
	keyword string
	family  Family
}{
	{"rhel", FamilyRHEL},
	{"debian", FamilyDebian},
	{"suse", FamilySUSE},
	{"arch", FamilyArch},
}

// Parse extracts key=value fields from os-release text. Values may be
// bare or double-quoted; comments and malformed lines are skipped.
func Parse(text string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		fields[strings.TrimSpace(key)] = value
	}
	return fields
}

// ResolveFamily maps the ID and ID_LIKE fields to a Family. ID_LIKE may
// list several tokens ("rhel fedora"), so matching is substring
// containment over the concatenation of both fields, not equality.
func ResolveFamily(id string, idLike string) Family {
	tokens := strings.ToLower(id + " " + idLike)
	for _, entry := range familyKeywords {
		if strings.Contains(tokens, entry.keyword) {
			return entry.family
		}
	}
	return FamilyUnknown
}

// System abstracts the filesystem read needed to detect the family.
type System interface {
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Detect reads the os-release file at path and resolves its family.
// Fields it also returns are the raw ID and ID_LIKE values for reporting.
func Detect(sys System, path string) (Family, string, string, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return FamilyUnknown, "", "", err
	}
	fields := Parse(string(data))
	id := fields["ID"]
	idLike := fields["ID_LIKE"]
	return ResolveFamily(id, idLike), id, idLike, nil
}
