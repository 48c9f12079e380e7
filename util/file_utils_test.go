package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFileAtomic(dir, "1_2_720p.key", []byte("key"))
	if err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	if path != filepath.Join(dir, "1_2_720p.key") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "key" {
		t.Fatalf("read back %q, %v", data, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the final file, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := WriteFileAtomic(dir, "x.m3u8", []byte("x"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("got %v, want ErrIO", err)
	}
}
