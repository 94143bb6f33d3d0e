package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReportClose_WritesEntries(t *testing.T) {
	dir := t.TempDir()

	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	stored := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(stored, []byte(`{"version":1}`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	r.Store("settings.json", stored)
	r.StoreData("result.css", []byte("#a {}"))
	r.StoreData("result.css", []byte("#b {}"))
	r.Store("missing.log", filepath.Join(dir, "missing.log"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["settings.json"] != `{"version":1}` {
		t.Errorf("settings.json = %q", files["settings.json"])
	}
	if files["result.css"] != "#a {}" {
		t.Errorf("result.css = %q", files["result.css"])
	}
	if files["result.css-1"] != "#b {}" {
		t.Errorf("result.css-1 = %q", files["result.css-1"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file must not be archived")
	}
	if !strings.Contains(files["MANIFEST"], "missing.log") {
		t.Errorf("MANIFEST does not mention all entries:\n%s", files["MANIFEST"])
	}
}

func TestReportStoreCopy_TakesSnapshot(t *testing.T) {
	dir := t.TempDir()

	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	path := filepath.Join(dir, "out.css")
	if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := r.StoreCopy("out.css", path); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	if err := os.WriteFile(path, []byte("after"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := r.StoreCopy("out.css", dir); err == nil {
		t.Error("StoreCopy() of directory should fail")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if got := readArchive(t, conf.Destination)["out.css"]; got != "before" {
		t.Errorf("out.css = %q, want %q", got, "before")
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
