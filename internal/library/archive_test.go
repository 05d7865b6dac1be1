package library

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// extractArchive decompresses a built archive back into a name -> content map.
func extractArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to open gzip stream: %v", err)
	}
	defer gr.Close()

	files := map[string]string{}
	tr := tar.NewReader(gr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read tar entry: %v", err)
		}

		content, err := io.ReadAll(tr)
		if err != nil {
			t.Fatalf("failed to read tar content: %v", err)
		}
		files[header.Name] = string(content)
	}

	return files
}

func TestBuildArchive(t *testing.T) {
	t.Run("TopLevelFilesOnly", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "a.mp3"), []byte("first chapter"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "b.mp3"), []byte("second chapter"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
			t.Fatalf("failed to create subdirectory: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "sub", "c.mp3"), []byte("hidden"), 0644); err != nil {
			t.Fatalf("failed to write nested file: %v", err)
		}

		data, err := BuildArchive(dir)
		if err != nil {
			t.Fatalf("failed to build archive: %v", err)
		}

		files := extractArchive(t, data)

		if len(files) != 2 {
			t.Fatalf("expected 2 archive members, got %d: %v", len(files), files)
		}
		if files["a.mp3"] != "first chapter" {
			t.Errorf("a.mp3 content mismatch: %q", files["a.mp3"])
		}
		if files["b.mp3"] != "second chapter" {
			t.Errorf("b.mp3 content mismatch: %q", files["b.mp3"])
		}
		if _, ok := files["c.mp3"]; ok {
			t.Error("subdirectory contents must not be archived")
		}
	})

	t.Run("BaseNamesOnly", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "info.toml"), []byte("title = \"x\""), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		data, err := BuildArchive(dir)
		if err != nil {
			t.Fatalf("failed to build archive: %v", err)
		}

		for name := range extractArchive(t, data) {
			if filepath.Base(name) != name {
				t.Errorf("archive member %q carries a directory prefix", name)
			}
		}
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		data, err := BuildArchive(t.TempDir())
		if err != nil {
			t.Fatalf("failed to build archive of empty directory: %v", err)
		}

		if len(extractArchive(t, data)) != 0 {
			t.Error("expected empty archive")
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		data, err := BuildArchive(filepath.Join(t.TempDir(), "gone"))
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
		if data != nil {
			t.Error("failed build must not return partial output")
		}
	})
}
