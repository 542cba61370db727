package account

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
)

var (
	// errors
	ErrNotFound             = errors.New("account does not exist")
	ErrExists               = errors.New("account already exists")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrIncorrectOldPassword = errors.New("old password is incorrect")
)

func isNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

type (
	Repository interface {
		CreateAccount(a Account) (Account, error)
		QueryAllAccounts() ([]Account, error)
		GetAccount(email string) (Account, error)
		UpdateAccount(a Account) (Account, error)
	}

	Service struct {
		repo   Repository
		hasher Hasher
	}
)

func NewService(repo Repository, hasher Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (svc *Service) Create(na NewAccount) (Account, error) {
	if err := na.Validate(svc); err != nil {
		return Account{}, err
	}
	return svc.repo.CreateAccount(Account{
		Email:        na.Email,
		Role:         na.Role,
		PasswordHash: svc.hasher.Hash(na.Password),
	})
}

// Login returns the account matching the credentials.
func (svc *Service) Login(l Login) (Account, error) {
	if err := l.Validate(); err != nil {
		return Account{}, err
	}
	acc, err := svc.repo.GetAccount(l.Email)
	if err != nil {
		return Account{}, err
	}
	if !checkHash(svc.hasher, l.Password, acc.PasswordHash) {
		return Account{}, ErrIncorrectPassword
	}
	return acc, nil
}

func (svc *Service) ChangePassword(cp ChangePassword) error {
	if err := cp.Validate(); err != nil {
		return err
	}
	acc, err := svc.repo.GetAccount(cp.Email)
	if err != nil {
		return err
	}
	if !checkHash(svc.hasher, cp.OldPassword, acc.PasswordHash) {
		return ErrIncorrectOldPassword
	}
	acc.PasswordHash = svc.hasher.Hash(cp.NewPassword)
	_, err = svc.repo.UpdateAccount(acc)
	return err
}

// ResetPassword sets a new password without checking the old one.
func (svc *Service) ResetPassword(email, password string) error {
	if core.CleanString(password) == "" {
		return core.NewFieldValidationError("password", "password cannot be empty")
	}
	acc, err := svc.repo.GetAccount(core.CleanString(email))
	if err != nil {
		return err
	}
	acc.PasswordHash = svc.hasher.Hash(password)
	_, err = svc.repo.UpdateAccount(acc)
	return err
}

func (svc *Service) Get(email string) (Account, error) {
	return svc.repo.GetAccount(core.CleanString(email))
}

func (svc *Service) QueryAll() ([]Account, error) {
	return svc.repo.QueryAllAccounts()
}
