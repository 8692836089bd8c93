package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-santa-certs/internal/fileutil"
)

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid extension html", extension: "html"},
		{name: "valid extension pdf", extension: "pdf"},
		{name: "empty extension", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "path separator", extension: "html/../../etc", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: "html\\evil", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: "html\x00", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile: %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q does not end in .html", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "<html></html>" {
		t.Errorf("unexpected content: %q", content)
	}

	cleanup()
	if fileutil.FileExists(path) {
		t.Error("file still exists after cleanup")
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "out.html")
		if err := fileutil.WriteFile(path, []byte("content")); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(content) != "content" {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.html")
		if err := fileutil.WriteFile(path, []byte("first")); err != nil {
			t.Fatalf("first write: %v", err)
		}
		if err := fileutil.WriteFile(path, []byte("second")); err != nil {
			t.Fatalf("second write: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(content) != "second" {
			t.Errorf("file not overwritten: %q", content)
		}
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if !fileutil.FileExists(path) {
		t.Error("existing file reported as missing")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("missing file reported as existing")
	}
	if fileutil.FileExists(dir) {
		t.Error("directory reported as file")
	}
}
