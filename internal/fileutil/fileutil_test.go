package fileutil_test

// Notes:
// - TestWriteFileAtomic covers the happy path, overwrite semantics, and
//   the missing-directory failure branch. Disk-full and rename-failure
//   branches are not simulated; the cleanup path is exercised via the
//   missing-directory case.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-img2pdf/internal/fileutil"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file with content and permissions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdf")
		content := []byte("%PDF-1.3 test")

		if err := fileutil.WriteFileAtomic(path, content, 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("permissions = %v, want 0644", info.Mode().Perm())
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdf")

		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("fails when target directory does not exist", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.pdf")
		err := fileutil.WriteFileAtomic(path, []byte("data"), 0o644)
		if err == nil {
			t.Fatal("WriteFileAtomic() error = nil, want error")
		}
	})

	t.Run("leaves no temp file behind on failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sub := filepath.Join(dir, "missing")
		_ = fileutil.WriteFileAtomic(filepath.Join(sub, "out.pdf"), []byte("data"), 0o644)

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".img2pdf-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing directory", path: dir, want: true},
		{name: "regular file", path: file, want: false},
		{name: "missing path", path: filepath.Join(dir, "nope"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.DirExists(tt.path); got != tt.want {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
