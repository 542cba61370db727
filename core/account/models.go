package account

import (
	"strings"

	"github.com/trezcool/checkmygrade/core"
)

// Roles
const (
	RoleStudent   = "Student"
	RoleProfessor = "Professor"
)

var Roles = []string{RoleStudent, RoleProfessor}

type Account struct {
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

func (a Account) IsProfessor() bool { return a.Role == RoleProfessor }

func (a Account) IsStudent() bool { return a.Role == RoleStudent }

// NormalizeRole maps a case-insensitive role name to its stored form.
func NormalizeRole(role string) string {
	role = core.CleanString(role, true /* lower */)
	for _, r := range Roles {
		if strings.ToLower(r) == role {
			return r
		}
	}
	return role
}

// NewAccount contains information needed to create a new Account.
type NewAccount struct {
	Email           string `json:"email" validate:"notblank,nodelim"`
	Password        string `json:"password" validate:"notblank"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,role"`
}

func (na *NewAccount) Validate(svc *Service) error {
	na.Email = core.CleanString(na.Email)
	na.Role = NormalizeRole(na.Role)

	if err := core.Validate.Struct(na); err != nil {
		return err
	}
	if _, err := svc.repo.GetAccount(na.Email); err == nil {
		return core.NewValidationError(ErrExists, core.FieldError{Field: "email", Error: ErrExists.Error()})
	} else if !isNotFound(err) {
		return err
	}
	return nil
}

type ChangePassword struct {
	Email       string `json:"email" validate:"notblank"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"notblank"`
}

func (cp *ChangePassword) Validate() error {
	cp.Email = core.CleanString(cp.Email)
	return core.Validate.Struct(cp)
}

type Login struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

func (l *Login) Validate() error {
	l.Email = core.CleanString(l.Email)
	return core.Validate.Struct(l)
}
