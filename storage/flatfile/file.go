package flatfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxLineSize = 1 << 20

// readLines returns the lines of the file at path. A missing file has no lines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return lines, nil
}

// writeLines replaces the file at path with lines. The content is written to a
// temporary file in the same directory which is then renamed over path.
func writeLines(path string, lines []string) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.New().String()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(f)
	if len(lines) > 0 {
		if _, err = w.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
			return errors.Wrapf(err, "writing %s", tmpPath)
		}
	}
	if err = w.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", tmpPath)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %s", tmpPath)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpPath)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}
