package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path with data. The data goes to a temporary
// file next to path first, so readers never see a partly written file.
func writeFileAtomic(path string, data []byte) error {
	err := renameio.WriteFile(path, data, 0644, renameio.WithTempDir(filepath.Dir(path)))
	if err != nil {
		return fmt.Errorf("can't write to %s: %w", path, err)
	}
	return nil
}
