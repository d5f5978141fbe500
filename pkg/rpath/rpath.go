package rpath

import (
	"fmt"
	"os"
	"path/filepath"
)

// Leaves absolute paths alone, anchors relative ones at the
// executable's directory instead of the cwd
func Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	exe_path, err := os.Executable()
	if err != nil {
		return "",
			fmt.Errorf("Can't find executable's location. Error: %w", err)
	}
	return filepath.Join(filepath.Dir(exe_path), path), nil
}
