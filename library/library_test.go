package library

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"layercss/layer"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "presets.db"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestPutGet(t *testing.T) {
	l := openTestLibrary(t)
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return stamp }

	if err := l.Put("sunset", "linear-gradient(red, blue)"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := l.Put("sunset", "linear-gradient(red, green)"); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}
	got, err := l.Get("sunset")
	if err != nil || got != "linear-gradient(red, green)" {
		t.Errorf("Get() = %q, %v", got, err)
	}
	if _, err := l.Get("missing"); !errors.Is(err, layer.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}

	entries, err := l.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].Updated.Equal(stamp) {
		t.Errorf("List() = %+v", entries)
	}
}

func TestPut_Validation(t *testing.T) {
	l := openTestLibrary(t)
	if err := l.Put(" ", "x"); !errors.Is(err, layer.ErrValidation) {
		t.Errorf("Put() with empty name error = %v", err)
	}
	if err := l.Put("x", ""); !errors.Is(err, layer.ErrValidation) {
		t.Errorf("Put() with empty value error = %v", err)
	}
}

func TestPutAllAndList(t *testing.T) {
	l := openTestLibrary(t)
	in := layer.Presets{"sky 10": "a", "sky 2": "b", "dawn": "c"}
	if err := l.PutAll(in); err != nil {
		t.Fatalf("PutAll() error = %v", err)
	}

	entries, err := l.List()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if len(names) != 3 || names[0] != "dawn" || names[1] != "sky 2" || names[2] != "sky 10" {
		t.Errorf("List() names = %v", names)
	}

	p, err := l.Presets()
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 || p["sky 2"] != "b" {
		t.Errorf("Presets() = %v", p)
	}
}

func TestPutAll_RollsBack(t *testing.T) {
	l := openTestLibrary(t)
	if err := l.Put("keep", "k"); err != nil {
		t.Fatal(err)
	}
	// "b" is stored before "c" fails validation
	err := l.PutAll(layer.Presets{"b": "value", "c": ""})
	if !errors.Is(err, layer.ErrValidation) {
		t.Fatalf("PutAll() error = %v", err)
	}
	p, err := l.Presets()
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 1 || p["keep"] != "k" {
		t.Errorf("Presets() = %v, want only untouched entry", p)
	}
}

func TestDelete(t *testing.T) {
	l := openTestLibrary(t)
	if err := l.Put("a", "x"); err != nil {
		t.Fatal(err)
	}
	if err := l.Delete("a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := l.Delete("a"); !errors.Is(err, layer.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.db")
	l, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Put("a", "x"); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	l, err = Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if got, err := l.Get("a"); err != nil || got != "x" {
		t.Errorf("Get() after reopen = %q, %v", got, err)
	}
}
