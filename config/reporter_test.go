package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()

	r, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer r.Close()

	files := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %s, want %s", r.Name(), conf.Destination)
	}

	stored := filepath.Join(dir, "output.css")
	if err := os.WriteFile(stored, []byte("body { margin: 0; }\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	corpus := filepath.Join(dir, "corpus")
	if err := os.MkdirAll(filepath.Join(corpus, "sub"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(corpus, "sub", "a.css"), []byte("a { color: red; }"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r.Store("result.css", stored)
	r.StoreData("model.txt", []byte("Model: 1 selectors"))
	if err := r.StoreCopy("corpus", corpus); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("corpus", corpus); err != nil {
		t.Fatalf("StoreCopy() second copy error = %v", err)
	}
	temps := append([]string(nil), r.temps...)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readReport(t, conf.Destination)
	if files["result.css"] != "body { margin: 0; }\n" {
		t.Errorf("unexpected result.css %q", files["result.css"])
	}
	if files["model.txt"] != "Model: 1 selectors" {
		t.Errorf("unexpected model.txt %q", files["model.txt"])
	}
	if files["corpus/sub/a.css"] != "a { color: red; }" {
		t.Errorf("directory copy missing from report: %v", files)
	}
	versioned := 0
	for name := range files {
		if strings.HasPrefix(name, "corpus-") && strings.HasSuffix(name, "/sub/a.css") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected versioned second copy, got %d", versioned)
	}
	for _, name := range []string{"result.css", "model.txt", "corpus"} {
		if !strings.Contains(files["MANIFEST"], "\t"+name+"\t") {
			t.Errorf("MANIFEST does not mention %s:\n%s", name, files["MANIFEST"])
		}
	}

	if len(temps) != 2 {
		t.Fatalf("expected 2 temporary directories, got %d", len(temps))
	}
	for _, tmp := range temps {
		if _, err := os.Stat(tmp); !os.IsNotExist(err) {
			os.RemoveAll(tmp)
			t.Errorf("temporary copy %s was not removed", tmp)
		}
	}
	if _, err := os.Stat(stored); err != nil {
		t.Errorf("stored file should not be removed, but got error: %v", err)
	}
}

func TestReport_StoreTwice(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/tmp/a")
	r.Store("a", "/tmp/a")

	defer func() {
		if recover() == nil {
			t.Error("expected panic storing different path under the same name")
		}
	}()
	r.Store("a", "/tmp/b")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("ignored", "/tmp")
	r.StoreData("ignored", nil)
	if err := r.StoreCopy("ignored", "/tmp"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() of nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
