package flatfile

import (
	"github.com/trezcool/checkmygrade/core/account"
)

// role, email, password_hash
var accountCodec = codec[string, account.Account]{
	name:   "account",
	fields: 3,
	decode: func(f []string) account.Account {
		return account.Account{Role: f[0], Email: f[1], PasswordHash: f[2]}
	},
	encode: func(a account.Account) []string {
		return []string{a.Role, a.Email, a.PasswordHash}
	},
	key: func(a account.Account) string { return a.Email },
}

type accountRepository struct {
	db *table[string, account.Account]
}

var _ account.Repository = (*accountRepository)(nil) // interface compliance check

func NewAccountRepository(db *DB) account.Repository {
	return &accountRepository{db: db.account}
}

func (repo *accountRepository) CreateAccount(a account.Account) (account.Account, error) {
	err := repo.db.update(func(rs *rows[string, account.Account]) error {
		if _, ok := rs.get(a.Email); ok {
			return account.ErrExists
		}
		rs.set(a.Email, a)
		return nil
	})
	if err != nil {
		return account.Account{}, err
	}
	return a, nil
}

func (repo *accountRepository) QueryAllAccounts() ([]account.Account, error) {
	rs, err := repo.db.view()
	if err != nil {
		return nil, err
	}
	return rs.values(), nil
}

func (repo *accountRepository) GetAccount(email string) (account.Account, error) {
	rs, err := repo.db.view()
	if err != nil {
		return account.Account{}, err
	}
	if a, ok := rs.get(email); ok {
		return a, nil
	}
	return account.Account{}, account.ErrNotFound
}

func (repo *accountRepository) UpdateAccount(a account.Account) (account.Account, error) {
	err := repo.db.update(func(rs *rows[string, account.Account]) error {
		if _, ok := rs.get(a.Email); !ok {
			return account.ErrNotFound
		}
		rs.set(a.Email, a)
		return nil
	})
	if err != nil {
		return account.Account{}, err
	}
	return a, nil
}
