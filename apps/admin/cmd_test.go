package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/tests"
)

func setup(t *testing.T) (*commandLine, *apps.App, *bytes.Buffer) {
	app, _ := testutil.NewApp(t)
	var out bytes.Buffer
	return &commandLine{app: app, out: &out}, app, &out
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwds    []string
	wantErr error
}

func stubPasswords(pwds []string) {
	i := 0
	readPasswordFunc = func(fd int) ([]byte, error) {
		if i >= len(pwds) {
			return nil, nil
		}
		i++
		return []byte(pwds[i-1]), nil
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli, app, _ := setup(t)
	testutil.CreateAccount(t, app, "prof@uni.edu", "old", account.RoleProfessor)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"resetpassword", "-email", "prof@uni.edu"}, wantErr: errHelp},
		{name: "account not found", args: []string{"resetpassword", "-email", "lol@uni.edu"}, pwds: []string{"new"}, wantErr: account.ErrNotFound},
		{name: "reset", args: []string{"resetpassword", "-email", "prof@uni.edu"}, pwds: []string{"new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPasswords(tt.pwds)
			err := cli.run(append([]string{"admin"}, tt.args...))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "cli.run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			_, err = app.Accounts.Login(account.Login{Email: "prof@uni.edu", Password: "new"})
			assert.NoError(t, err)
		})
	}
}

func Test_commandLine_addAccount(t *testing.T) {
	cli, app, out := setup(t)

	tests := []struct {
		cliTest
		wantInvalid bool
	}{
		{cliTest: cliTest{name: "no email", args: []string{"addaccount"}, wantErr: errHelp}},
		{cliTest: cliTest{name: "mismatch", args: []string{"addaccount", "-email", "a@uni.edu"}, pwds: []string{"x", "y"}}},
		{cliTest: cliTest{name: "unknown role", args: []string{"addaccount", "-email", "a@uni.edu", "-role", "Dean"}, pwds: []string{"x", "x"}}, wantInvalid: true},
		{cliTest: cliTest{name: "professor", args: []string{"addaccount", "-email", "a@uni.edu", "-role", "professor"}, pwds: []string{"x", "x"}}},
		{cliTest: cliTest{name: "existing", args: []string{"addaccount", "-email", "a@uni.edu"}, pwds: []string{"x", "x"}, wantErr: account.ErrExists}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPasswords(tt.pwds)
			out.Reset()
			err := cli.run(append([]string{"admin"}, tt.args...))

			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "cli.run() error = %v, wantErr %v", err, tt.wantErr)
			case tt.wantInvalid:
				assert.True(t, core.IsValidation(err), "cli.run() error = %v, want validation error", err)
			case tt.name == "mismatch":
				var argErr *apps.ArgumentError
				assert.True(t, errors.As(err, &argErr), "cli.run() error = %v, want *apps.ArgumentError", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Enter password:\nConfirm password:\nProfessor account created for a@uni.edu\n", out.String())
			}
		})
	}

	acc, err := app.Accounts.Get("a@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, account.RoleProfessor, acc.Role)
}

func Test_commandLine_reconcile(t *testing.T) {
	cli, app, out := setup(t)
	testutil.CreateCourse(t, app.DB, "DATA200", "Data Science")
	alice := testutil.CreateStudent(t, app.DB, "Alice", "Smith", "alice@uni.edu", "DATA200", "B", "85")
	testutil.CreateGrade(t, app.DB, alice, "DATA200", "A", "95")
	testutil.CreateEnrolled(t, app.DB, "Bob", "Jones", "bob@uni.edu", "DATA200", "C", "80")

	path := app.Conf.Path(app.Conf.Files.Student)
	orig, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, cli.run([]string{"admin", "reconcile", "-dry-run"}))
	assert.Equal(t, "Alice Smith (DATA200): Grade A, Mark 95\n1 student(s) would be updated.\n", out.String())
	unchanged, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, unchanged)

	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "reconcile"}))
	assert.Contains(t, out.String(), "-alice@uni.edu,Alice,Smith,DATA200,B,85\n")
	assert.Contains(t, out.String(), "+alice@uni.edu,Alice,Smith,DATA200,A,95\n")
	assert.NotContains(t, out.String(), "bob@uni.edu")
	assert.Contains(t, out.String(), "1 student(s) updated.\n")

	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "reconcile"}))
	assert.Equal(t, "Nothing to reconcile.\n", out.String())
}
