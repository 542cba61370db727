package logsvc

import (
	"bytes"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
)

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), core.NewTestConfig(t.TempDir()))

	logger.Warn(
		"skipping malformed line",
		errors.New("boom"),
		map[string]interface{}{"table": "student"},
		account.Account{Email: "prof@test.test", Role: account.RoleProfessor},
	)

	out := buf.String()
	assert.Contains(t, out, "WARN: skipping malformed line")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "table:student")
	assert.NotContains(t, out, "prof@test.test")
}
