package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/core"
)

type recordingLogger struct {
	core.NopLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warnings = append(l.warnings, msg)
}

func openTestDB(t *testing.T) (*DB, *core.Config, *recordingLogger) {
	t.Helper()
	conf := core.NewTestConfig(t.TempDir())
	logger := &recordingLogger{}
	db, err := Open(conf, logger)
	require.NoError(t, err)
	return db, conf, logger
}

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func tempFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	return matches
}
