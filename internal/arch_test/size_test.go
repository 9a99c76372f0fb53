package arch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFilesPerPackage = 12
	maxLinesPerFile    = 400
)

func TestPackageSize(t *testing.T) {
	t.Parallel()

	for _, pkg := range packages(t) {
		if n := len(sourceFiles(t, pkg, false)); n > maxFilesPerPackage {
			t.Errorf("package %s has %d source files (limit %d); split it", pkg, n, maxFilesPerPackage)
		}
		for _, f := range sourceFiles(t, pkg, true) {
			data, err := os.ReadFile(f)
			if err != nil {
				t.Fatalf("read %s: %v", f, err)
			}
			if n := bytes.Count(data, []byte("\n")); n > maxLinesPerFile {
				t.Errorf("%s/%s has %d lines (limit %d)", pkg, filepath.Base(f), n, maxLinesPerFile)
			}
		}
	}
}
