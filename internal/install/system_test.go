package install

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealSystemCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write src: %v", err)
	}
	dst := filepath.Join(dir, "out", "run.sh")
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := (RealSystem{}).CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat dst: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("mode = %o, want 755", info.Mode().Perm())
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "#!/bin/sh\n" {
		t.Fatalf("content = %q, err %v", data, err)
	}
}

func TestRealSystemCopyFileRejectsDir(t *testing.T) {
	dir := t.TempDir()
	if err := (RealSystem{}).CopyFile(dir, filepath.Join(dir, "x")); err == nil {
		t.Fatalf("expected error copying a directory")
	}
}

func TestRealSystemCopyTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(filepath.Join(src, "api"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "main.py"), []byte("app\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "api", "routes.py"), []byte("routes\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	dst := filepath.Join(dir, "deployed")
	if err := (RealSystem{}).CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	for _, rel := range []string{"main.py", filepath.Join("api", "routes.py")} {
		if _, err := os.Stat(filepath.Join(dst, rel)); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}
}

func TestRealSystemGeteuid(t *testing.T) {
	if got, want := (RealSystem{}).Geteuid(), os.Geteuid(); got != want {
		t.Fatalf("Geteuid = %d, want %d", got, want)
	}
}
