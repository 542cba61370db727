package main

func (cli *commandLine) resetPassword(email, pwd string) error {
	return cli.app.Accounts.ResetPassword(email, pwd)
}
