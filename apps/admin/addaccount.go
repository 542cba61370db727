package main

import (
	"fmt"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core/account"
)

// addAccount creates an account.Account, as the menu's sign up does.
func (cli *commandLine) addAccount(email, role, pwd, confirm string) error {
	if pwd != confirm {
		return apps.NewArgumentError("passwords do not match")
	}
	acc, err := cli.app.Accounts.Create(account.NewAccount{
		Email:           email,
		Password:        pwd,
		PasswordConfirm: confirm,
		Role:            role,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s account created for %s\n", acc.Role, acc.Email)
	return nil
}
