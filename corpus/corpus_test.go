package corpus

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"csslearn/common"
	"csslearn/css"
	"csslearn/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	zf, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zf.Close()

	w := zip.NewWriter(zf)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(entries[name])); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			t.Errorf("path %q is not absolute", p)
		}
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("Rel() error = %v", err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "file10.css"), "a { color: red; }")
	writeFile(t, filepath.Join(root, "file2.css"), "p { margin: 0; }")
	writeFile(t, filepath.Join(root, "readme.txt"), "not css")
	writeFile(t, filepath.Join(root, "theme.CSS"), "h1 { color: blue; }")
	writeFile(t, filepath.Join(root, "sub", "deep", "main.css"), "body { margin: 0; }")
	writeFile(t, filepath.Join(root, ".cache", "old.css"), "div { gap: 1px; }")
	writeFile(t, filepath.Join(root, "node_modules", "lib.css"), "span { gap: 2px; }")
	writeZip(t, filepath.Join(root, "bundle.zip"), map[string]string{
		"styles/site.css": ".nav { display: flex; }",
		"index.html":      "<html></html>",
	})

	tests := []struct {
		name string
		opts ScanOptions
		want []string
	}{
		{
			name: "everything",
			want: []string{".cache/old.css", "file2.css", "file10.css", "node_modules/lib.css", "sub/deep/main.css"},
		},
		{
			name: "skip hidden and dirs",
			opts: ScanOptions{SkipHidden: true, SkipDirs: []string{"node_modules"}},
			want: []string{"file2.css", "file10.css", "sub/deep/main.css"},
		},
		{
			name: "archives",
			opts: ScanOptions{SkipHidden: true, SkipDirs: []string{"node_modules"}, Archives: true},
			want: []string{"bundle.zip/styles/site.css", "file2.css", "file10.css", "sub/deep/main.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rel(t, root, Scan(context.Background(), root, tt.opts, zaptest.NewLogger(t)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScan_Empty(t *testing.T) {
	got := Scan(context.Background(), t.TempDir(), ScanOptions{}, zaptest.NewLogger(t))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}

	got = Scan(context.Background(), filepath.Join(t.TempDir(), "missing"), ScanOptions{}, zaptest.NewLogger(t))
	if len(got) != 0 {
		t.Errorf("expected nothing for missing root, got %v", got)
	}
}

func TestScan_Symlinks(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "target")
	writeFile(t, filepath.Join(target, "a.css"), "a { color: red; }")
	writeFile(t, filepath.Join(target, "sub", "b.css"), "b { color: blue; }")

	linkedDir := filepath.Join(base, "linked-dir")
	if err := os.Symlink(target, linkedDir); err != nil {
		t.Skipf("symlinks are not supported: %v", err)
	}
	files := filepath.Join(base, "files")
	if err := os.MkdirAll(files, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.Symlink(filepath.Join(target, "a.css"), filepath.Join(files, "linked.css")); err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	if err := os.Symlink(filepath.Join(target, "missing.css"), filepath.Join(files, "broken.css")); err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(files, "dir-link")); err != nil {
		t.Fatalf("failed to create link: %v", err)
	}

	tests := []struct {
		name string
		root string
		want []string
	}{
		{"linked root", linkedDir, []string{"a.css", "sub/b.css"}},
		{"linked files", files, []string{"linked.css"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := Scan(context.Background(), tt.root, ScanOptions{}, zaptest.NewLogger(t))
			if got := rel(t, tt.root, found); !slices.Equal(got, tt.want) {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}

			resolved, err := Resolve(context.Background(), tt.root, ScanOptions{}, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !slices.Equal(resolved, found) {
				t.Errorf("Resolve() = %v, want %v", resolved, found)
			}
		})
	}
}

func TestScan_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "one.css"), "a { color: red; }")
	writeFile(t, filepath.Join(root, "locked", "two.css"), "p { margin: 0; }")
	writeFile(t, filepath.Join(root, "z", "three.css"), "h1 { color: blue; }")

	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	got := rel(t, root, Scan(context.Background(), root, ScanOptions{}, zaptest.NewLogger(t)))
	if !slices.Equal(got, []string{"a/one.css", "z/three.css"}) {
		t.Errorf("Scan() = %v", got)
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.css"), "a { color: red; }")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := Scan(ctx, root, ScanOptions{}, zaptest.NewLogger(t)); len(got) != 0 {
		t.Errorf("expected nothing from cancelled scan, got %v", got)
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	notZip := filepath.Join(dir, "test.zip")
	writeFile(t, notZip, "not a real zip file")
	if got, err := isArchiveFile(notZip); err != nil || got {
		t.Errorf("isArchiveFile(fake) = %v, %v", got, err)
	}

	wrongExt := filepath.Join(dir, "test.txt")
	writeZip(t, wrongExt, map[string]string{"a.css": "a {}"})
	if got, err := isArchiveFile(wrongExt); err != nil || got {
		t.Errorf("isArchiveFile(txt) = %v, %v", got, err)
	}

	archived := filepath.Join(dir, "real.ZIP")
	writeZip(t, archived, map[string]string{"a.css": "a {}"})
	if got, err := isArchiveFile(archived); err != nil || !got {
		t.Errorf("isArchiveFile(zip) = %v, %v", got, err)
	}

	if _, err := isArchiveFile(filepath.Join(dir, "missing.zip")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadStylesheet(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.css")
	writeFile(t, plain, "\xef\xbb\xbfbody { margin: 0; }")

	zipPath := filepath.Join(dir, "bundle.zip")
	writeZip(t, zipPath, map[string]string{"css/site.css": ".nav { display: flex; }"})

	image := filepath.Join(dir, "image.css")
	writeFile(t, image, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{"plain file without bom", plain, "body { margin: 0; }", ""},
		{"archive entry", filepath.Join(zipPath, "css", "site.css"), ".nav { display: flex; }", ""},
		{"missing archive entry", filepath.Join(zipPath, "css", "other.css"), "", "file does not exist"},
		{"binary content", image, "", "binary content"},
		{"missing file", filepath.Join(dir, "missing.css"), "", "no such file"},
		{"directory", dir, "", "not a regular file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadStylesheet(tt.path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ReadStylesheet() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadStylesheet() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadStylesheet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLearn(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "site.css"), "body { margin: 0; color: #fff; }")
	writeFile(t, filepath.Join(root, "broken.css"), "a { color: red;")
	writeFile(t, filepath.Join(root, "image.css"), "GIF89a\x01\x00\x01\x00")
	writeZip(t, filepath.Join(root, "bundle.zip"), map[string]string{"x/card.css": ".card { padding: 1rem; }"})

	log := zaptest.NewLogger(t)
	paths := Scan(context.Background(), root, ScanOptions{Archives: true}, log)
	if len(paths) != 4 {
		t.Fatalf("expected 4 stylesheets, got %v", paths)
	}

	m := model.New()
	st, err := Learn(context.Background(), paths, css.NewParser(log, common.ParserModeScrape), m, log)
	if err != nil {
		t.Fatalf("Learn() error = %v", err)
	}
	if st != (Stats{Files: 3, Skipped: 1, Rules: 2}) {
		t.Errorf("unexpected stats %+v", st)
	}
	if got := m.CommonProperties(10); !slices.Equal(got, []string{"padding", "margin", "color"}) {
		t.Errorf("CommonProperties(10) = %v", got)
	}
	if !slices.Equal(m.Selectors(), []string{".card", "body"}) {
		t.Errorf("Selectors() = %v", m.Selectors())
	}
	if v := m.ValueFor("margin"); v != "0" {
		t.Errorf("ValueFor(margin) = %q", v)
	}
}

func TestLearn_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "site.css"), "body { margin: 0; }")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := model.New()
	log := zaptest.NewLogger(t)
	_, err := Learn(ctx, []string{filepath.Join(root, "site.css")}, css.NewParser(log, common.ParserModeScrape), m, log)
	if err == nil {
		t.Error("expected error from cancelled context")
	}
	if m.Stats().Selectors != 0 {
		t.Error("nothing should have been learned")
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "site", "b.css"), "b { color: red; }")
	writeFile(t, filepath.Join(root, "site", "a.css"), "a { color: red; }")
	writeFile(t, filepath.Join(root, "single.css"), "p { margin: 0; }")
	writeFile(t, filepath.Join(root, "notes.txt"), "not css")
	writeZip(t, filepath.Join(root, "bundle.zip"), map[string]string{
		"styles/site.css":  ".card { padding: 1em; }",
		"styles/print.css": "body { color: black; }",
		"other/x.css":      "x { gap: 0; }",
		"readme.md":        "# bundle",
	})

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"directory", "site", []string{"site/a.css", "site/b.css"}},
		{"stylesheet", "single.css", []string{"single.css"}},
		{"archive", "bundle.zip", []string{"bundle.zip/other/x.css", "bundle.zip/styles/print.css", "bundle.zip/styles/site.css"}},
		{"directory in archive", "bundle.zip/styles", []string{"bundle.zip/styles/print.css", "bundle.zip/styles/site.css"}},
		{"file in archive", "bundle.zip/styles/site.css", []string{"bundle.zip/styles/site.css"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(context.Background(), filepath.Join(root, filepath.FromSlash(tt.src)), ScanOptions{}, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if r := rel(t, root, got); !slices.Equal(r, tt.want) {
				t.Errorf("Resolve() = %v, want %v", r, tt.want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "site", "a.css"), "a { color: red; }")
	writeFile(t, filepath.Join(root, "notes.txt"), "not css")
	writeZip(t, filepath.Join(root, "bundle.zip"), map[string]string{"styles/site.css": "a { color: red; }"})

	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"not a stylesheet", "notes.txt", "not recognized"},
		{"missing file", "missing.css", "not found"},
		{"missing file in directory", "site/missing.css", "not found"},
		{"missing entry", "bundle.zip/nothing", "not found in archive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(context.Background(), filepath.Join(root, filepath.FromSlash(tt.src)), ScanOptions{}, zaptest.NewLogger(t))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Resolve(ctx, root, ScanOptions{}, zaptest.NewLogger(t)); err != context.Canceled {
		t.Errorf("Resolve() with cancelled context error = %v", err)
	}
}
