package osrelease

import (
	"errors"
	"testing"
)

func TestResolveFamily(t *testing.T) {
	cases := []struct {
		name   string
		id     string
		idLike string
		want   Family
	}{
		{"ubuntu", "ubuntu", "debian", FamilyDebian},
		{"debian", "debian", "", FamilyDebian},
		{"fedora", "fedora", "rhel fedora", FamilyRHEL},
		{"centos", "centos", "rhel centos fedora", FamilyRHEL},
		{"rocky", "rocky", "rhel centos fedora", FamilyRHEL},
		{"opensuse", "opensuse-leap", "suse opensuse", FamilySUSE},
		{"sles", "sles", "suse", FamilySUSE},
		{"arch", "arch", "", FamilyArch},
		{"manjaro", "manjaro", "arch", FamilyArch},
		{"upper case tokens", "Ubuntu", "Debian", FamilyDebian},
		{"alpine", "alpine", "", FamilyUnknown},
		{"gentoo", "gentoo", "", FamilyUnknown},
		{"empty", "", "", FamilyUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveFamily(tc.id, tc.idLike)
			if got != tc.want {
				t.Fatalf("ResolveFamily(%q, %q) = %s, want %s", tc.id, tc.idLike, got, tc.want)
			}
		})
	}
}

func TestResolveFamilyOrderPrefersRHEL(t *testing.T) {
	// amzn lists both rhel and fedora-ish tokens; first keyword match wins.
	if got := ResolveFamily("amzn", "fedora rhel"); got != FamilyRHEL {
		t.Fatalf("expected rhel, got %s", got)
	}
}

func TestParse(t *testing.T) {
	text := "# comment\n" +
		"NAME=\"Ubuntu\"\n" +
		"ID=ubuntu\n" +
		"ID_LIKE=debian\n" +
		"VERSION_ID=\"24.04\"\n" +
		"\n" +
		"malformed line\n"
	fields := Parse(text)
	if fields["ID"] != "ubuntu" {
		t.Fatalf("ID = %q", fields["ID"])
	}
	if fields["ID_LIKE"] != "debian" {
		t.Fatalf("ID_LIKE = %q", fields["ID_LIKE"])
	}
	if fields["NAME"] != "Ubuntu" {
		t.Fatalf("quotes not stripped: NAME = %q", fields["NAME"])
	}
	if _, ok := fields["malformed line"]; ok {
		t.Fatalf("malformed line should be skipped")
	}
}

func TestFamilyString(t *testing.T) {
	pairs := map[Family]string{
		FamilyRHEL:    "rhel",
		FamilyDebian:  "debian",
		FamilySUSE:    "suse",
		FamilyArch:    "arch",
		FamilyUnknown: "unknown",
	}
	for fam, want := range pairs {
		if fam.String() != want {
			t.Fatalf("String() = %q, want %q", fam.String(), want)
		}
	}
}

type fakeReadSystem struct {
	data map[string][]byte
	err  error
}

func (f fakeReadSystem) ReadFile(name string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.data[name]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func TestDetect(t *testing.T) {
	sys := fakeReadSystem{data: map[string][]byte{
		"/etc/os-release": []byte("ID=fedora\nID_LIKE=\"rhel fedora\"\n"),
	}}
	fam, id, idLike, err := Detect(sys, "/etc/os-release")
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if fam != FamilyRHEL {
		t.Fatalf("family = %s, want rhel", fam)
	}
	if id != "fedora" || idLike != "rhel fedora" {
		t.Fatalf("raw fields = %q, %q", id, idLike)
	}
}

func TestDetectReadError(t *testing.T) {
	wantErr := errors.New("permission denied")
	_, _, _, err := Detect(fakeReadSystem{err: wantErr}, "/etc/os-release")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected read error, got %v", err)
	}
}
