package install

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quarterdeck-io/quartermaster/internal/shell"
)

// fakeSystem is an in-memory System that records every mutation so
// tests can assert that gated stages left the host untouched.
type fakeSystem struct {
	euid      int
	files     map[string]string
	dirs      map[string]bool
	mutations []string
}

func newFakeSystem(euid int) *fakeSystem {
	return &fakeSystem{
		euid:  euid,
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
}

func (f *fakeSystem) Geteuid() int { return f.euid }

func (f *fakeSystem) Stat(name string) (os.FileInfo, error) {
	if f.dirs[name] {
		return fakeFileInfo{name: filepath.Base(name), dir: true}, nil
	}
	if _, ok := f.files[name]; ok {
		return fakeFileInfo{name: filepath.Base(name)}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (f *fakeSystem) ReadFile(name string) ([]byte, error) {
	content, ok := f.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func (f *fakeSystem) MkdirAll(path string, perm os.FileMode) error {
	f.mutations = append(f.mutations, "mkdir "+path)
	f.dirs[path] = true
	return nil
}

func (f *fakeSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	f.mutations = append(f.mutations, "write "+name)
	f.files[name] = string(data)
	return nil
}

func (f *fakeSystem) CopyFile(src string, dst string) error {
	content, ok := f.files[src]
	if !ok {
		return &fs.PathError{Op: "open", Path: src, Err: fs.ErrNotExist}
	}
	f.mutations = append(f.mutations, fmt.Sprintf("copyfile %s -> %s", src, dst))
	f.files[dst] = content
	return nil
}

func (f *fakeSystem) CopyTree(src string, dst string) error {
	if !f.dirs[src] {
		return &fs.PathError{Op: "stat", Path: src, Err: fs.ErrNotExist}
	}
	f.mutations = append(f.mutations, fmt.Sprintf("copytree %s -> %s", src, dst))
	f.dirs[dst] = true
	prefix := src + string(filepath.Separator)
	for path, content := range f.files {
		if strings.HasPrefix(path, prefix) {
			f.files[filepath.Join(dst, strings.TrimPrefix(path, prefix))] = content
		}
	}
	return nil
}

type fakeFileInfo struct {
	name string
	dir  bool
}

func (i fakeFileInfo) Name() string       { return i.name }
func (i fakeFileInfo) Size() int64        { return 0 }
func (i fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return i.dir }
func (i fakeFileInfo) Sys() any           { return nil }

// fakeRunner records every invocation and fails commands matched by
// failMatch with failErr.
type fakeRunner struct {
	commands  []string
	failMatch string
	failErr   error
	outputs   map[string]string
}

func (r *fakeRunner) Run(ctx context.Context, cmd shell.Command) error {
	line := cmd.String()
	r.commands = append(r.commands, line)
	if r.failMatch != "" && strings.Contains(line, r.failMatch) {
		if r.failErr != nil {
			return r.failErr
		}
		return fmt.Errorf("%s: exit status 1", line)
	}
	return nil
}

func (r *fakeRunner) Output(ctx context.Context, cmd shell.Command) (string, error) {
	line := cmd.String()
	r.commands = append(r.commands, line)
	if r.failMatch != "" && strings.Contains(line, r.failMatch) {
		return "", fmt.Errorf("%s: exit status 3", line)
	}
	if out, ok := r.outputs[line]; ok {
		return out, nil
	}
	return "active", nil
}
