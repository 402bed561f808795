package checkers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DataDirChecker verifies the store directory exists and is writable.
// Both persisted slots (favorite job, last search output) live there.
type DataDirChecker struct {
	dir string
}

func NewDataDirChecker(dir string) *DataDirChecker {
	return &DataDirChecker{dir: dir}
}

func (c *DataDirChecker) Name() string { return "datadir" }

func (c *DataDirChecker) Check(ctx context.Context) error {
	info, err := os.Stat(c.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", c.dir)
	}
	probe := filepath.Join(c.dir, ".ready")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
