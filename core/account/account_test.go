package account_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
	testutil "github.com/trezcool/checkmygrade/tests"
)

func TestNewHasher(t *testing.T) {
	for _, name := range []string{"", account.HasherSHA256, account.HasherSHA3, account.HasherBLAKE2b} {
		t.Run(name, func(t *testing.T) {
			h, err := account.NewHasher(name)
			require.NoError(t, err)
			digest := h.Hash("s3cret")
			assert.Len(t, digest, 64)
			assert.Equal(t, digest, h.Hash("s3cret"))
			assert.NotEqual(t, digest, h.Hash("s3cret!"))
		})
	}

	h, err := account.NewHasher("")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", h.Hash("password"))

	_, err = account.NewHasher("md5")
	assert.True(t, errors.Is(err, account.ErrUnknownHasher))
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		in       account.NewAccount
		wantRole string
		wantErr  bool
	}{
		{
			name:     "lowercase role",
			in:       account.NewAccount{Email: " prof@uni.edu ", Password: "pwd", PasswordConfirm: "pwd", Role: "professor"},
			wantRole: account.RoleProfessor,
		},
		{
			name:    "password mismatch",
			in:      account.NewAccount{Email: "a@uni.edu", Password: "pwd", PasswordConfirm: "pwd2", Role: "Student"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			in:      account.NewAccount{Email: "a@uni.edu", Password: "pwd", PasswordConfirm: "pwd", Role: "admin"},
			wantErr: true,
		},
		{
			name:    "comma in email",
			in:      account.NewAccount{Email: "a,b@uni.edu", Password: "pwd", PasswordConfirm: "pwd", Role: "Student"},
			wantErr: true,
		},
		{
			name:    "existing account",
			in:      account.NewAccount{Email: "taken@uni.edu", Password: "pwd", PasswordConfirm: "pwd", Role: "Student"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testutil.NewApp(t)
			testutil.CreateAccount(t, app, "taken@uni.edu", "pwd", account.RoleStudent)

			acc, err := app.Accounts.Create(tt.in)
			if tt.wantErr {
				assert.True(t, core.IsValidation(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "prof@uni.edu", acc.Email)
			assert.Equal(t, tt.wantRole, acc.Role)
			assert.NotEqual(t, "pwd", acc.PasswordHash)
		})
	}
}

func TestService_Login(t *testing.T) {
	app, _ := testutil.NewApp(t)
	testutil.CreateAccount(t, app, "prof@uni.edu", "pwd", account.RoleProfessor)

	tests := []struct {
		name    string
		in      account.Login
		wantErr error
	}{
		{name: "ok", in: account.Login{Email: "prof@uni.edu", Password: "pwd"}},
		{name: "wrong password", in: account.Login{Email: "prof@uni.edu", Password: "nope"}, wantErr: account.ErrIncorrectPassword},
		{name: "unknown email", in: account.Login{Email: "who@uni.edu", Password: "pwd"}, wantErr: account.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := app.Accounts.Login(tt.in)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, acc.IsProfessor())
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	app, _ := testutil.NewApp(t)
	testutil.CreateAccount(t, app, "stu@uni.edu", "old", account.RoleStudent)

	err := app.Accounts.ChangePassword(account.ChangePassword{Email: "stu@uni.edu", OldPassword: "bad", NewPassword: "new"})
	assert.Equal(t, account.ErrIncorrectOldPassword, err)

	err = app.Accounts.ChangePassword(account.ChangePassword{Email: "stu@uni.edu", OldPassword: "old", NewPassword: " "})
	assert.True(t, core.IsValidation(err))

	require.NoError(t, app.Accounts.ChangePassword(account.ChangePassword{Email: "stu@uni.edu", OldPassword: "old", NewPassword: "new"}))
	_, err = app.Accounts.Login(account.Login{Email: "stu@uni.edu", Password: "old"})
	assert.Equal(t, account.ErrIncorrectPassword, err)
	acc, err := app.Accounts.Login(account.Login{Email: "stu@uni.edu", Password: "new"})
	require.NoError(t, err)
	assert.True(t, acc.IsStudent())
}

func TestService_ResetPassword(t *testing.T) {
	app, _ := testutil.NewApp(t)
	testutil.CreateAccount(t, app, "stu@uni.edu", "old", account.RoleStudent)

	assert.True(t, core.IsValidation(app.Accounts.ResetPassword("stu@uni.edu", "")))
	assert.True(t, errors.Is(app.Accounts.ResetPassword("who@uni.edu", "x"), account.ErrNotFound))

	require.NoError(t, app.Accounts.ResetPassword("stu@uni.edu", "fresh"))
	_, err := app.Accounts.Login(account.Login{Email: "stu@uni.edu", Password: "fresh"})
	assert.NoError(t, err)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, account.RoleStudent, account.NormalizeRole(" STUDENT "))
	assert.Equal(t, account.RoleProfessor, account.NormalizeRole("Professor"))
	assert.Equal(t, "admin", account.NormalizeRole("Admin"))
}
