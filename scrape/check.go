package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// checkFile compares the file at path with want. When they differ, a
// diff is written to w and a *StaleError returned. A missing file counts
// as stale.
func checkFile(w io.Writer, path string, want []byte) error {
	got, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		got = nil
	case err != nil:
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if string(got) == string(want) {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(got), string(want), false)
	fmt.Fprintln(w, dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs)))
	return &StaleError{Path: path}
}
