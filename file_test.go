package jdom

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("{\n\t\"answer\": 42\n}\n"), 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	d := Document{}
	root, err := d.LoadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if i, err := root.Key("answer").Int(); err != nil || i != 42 {
		t.Errorf("Unexpected answer: %d, %v", i, err)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	d := Document{}
	_, err := d.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a":}`), 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	d := Document{}
	if _, err := d.LoadFile(path); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}
