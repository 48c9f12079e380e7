package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WriteFileAtomic writes data next to its final location
// and renames it into place, so readers never observe
// a half-written file.
func WriteFileAtomic(dir string, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	tmpPath := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	zap.S().Debugf("wrote %s (%d bytes)", path, len(data))
	return path, nil
}
