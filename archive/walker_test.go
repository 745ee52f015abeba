package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

type entry struct {
	name    string
	content string
}

func makeZip(t *testing.T, entries ...entry) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		if strings.HasSuffix(e.name, "/") {
			hdr := &zip.FileHeader{Name: e.name}
			hdr.SetMode(os.ModeDir | 0755)
			if _, err := w.CreateHeader(hdr); err != nil {
				t.Fatalf("Failed to create directory %s: %v", e.name, err)
			}
			continue
		}
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t,
		entry{"styles/", ""},
		entry{"styles/main.css", "body { margin: 0; }"},
		entry{"styles/print.CSS", "p { color: black; }"},
		entry{"index.html", "<html></html>"},
		entry{"theme.css", ".nav { display: flex; }"},
	)

	tests := []struct {
		name  string
		match MatchFunc
		want  []string
	}{
		{"css entries", WithExt(".css"), []string{"styles/main.css", "theme.css"}},
		{"nil matches every file", nil, []string{"styles/main.css", "styles/print.CSS", "index.html", "theme.css"}},
		{"nothing matches", WithExt(".scss"), nil},
		{"custom match", func(name string) bool { return strings.HasPrefix(name, "styles/") }, []string{"styles/main.css", "styles/print.CSS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.match, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Errorf("Walk() error = %v", err)
			}
			if !slices.Equal(visited, tt.want) {
				t.Errorf("visited %v, want %v", visited, tt.want)
			}
		})
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk("/nonexistent/file.zip", nil, func(archive string, file *zip.File) error {
			return nil
		})
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}

		err := Walk(invalidZip, nil, func(archive string, file *zip.File) error {
			return nil
		})
		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})

	t.Run("path traversal", func(t *testing.T) {
		zipPath := makeZip(t, entry{"../evil.css", "a { color: red; }"})

		visited := 0
		err := Walk(zipPath, WithExt(".css"), func(archive string, file *zip.File) error {
			visited++
			return nil
		})
		if err == nil {
			t.Error("expected error for unsafe entry")
		}
		if visited != 0 {
			t.Errorf("visited %d unsafe entries", visited)
		}
	})
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := makeZip(t,
		entry{"a.css", "a {}"},
		entry{"b.css", "b {}"},
		entry{"c.css", "c {}"},
	)

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, WithExt(".css"), func(archive string, file *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})

	if !errors.Is(err, stopErr) {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2 (early termination)", visited)
	}
}

func TestReadFile(t *testing.T) {
	content := "body { margin: 0; color: #fff; }"
	zipPath := makeZip(t, entry{"main.css", content})

	t.Run("no limit", func(t *testing.T) {
		err := Walk(zipPath, nil, func(archive string, file *zip.File) error {
			data, err := ReadFile(file, 0)
			if err != nil {
				return err
			}
			if string(data) != content {
				t.Errorf("content = %q, want %q", data, content)
			}
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
	})

	t.Run("too big", func(t *testing.T) {
		err := Walk(zipPath, nil, func(archive string, file *zip.File) error {
			_, err := ReadFile(file, 4)
			return err
		})
		if err == nil || !strings.Contains(err.Error(), "too big") {
			t.Errorf("expected size error, got %v", err)
		}
	})
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		safe bool
	}{
		{"styles/main.css", true},
		{"a..b.css", true},
		{"/etc/passwd", false},
		{`\windows\evil.css`, false},
		{"styles/../../evil.css", false},
		{"..", false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.safe {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.safe)
		}
	}
}
