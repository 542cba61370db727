package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/checkmygrade/apps"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	app *apps.App
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  resetpassword -email EMAIL - reset an account's password")
	fmt.Fprintln(cli.out, "  addaccount -email EMAIL -role Student|Professor - create a login account")
	fmt.Fprintln(cli.out, "  reconcile [-dry-run] - copy current-course grades from the Grade table onto students")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The account's email. The password will be prompted next.")

	addAccountCmd := flag.NewFlagSet("addaccount", flag.ContinueOnError)
	addAccountEmail := addAccountCmd.String("email", "", "The account's email. The password will be prompted next.")
	addAccountRole := addAccountCmd.String("role", "Student", "Student or Professor")

	reconcileCmd := flag.NewFlagSet("reconcile", flag.ContinueOnError)
	reconcileDryRun := reconcileCmd.Bool("dry-run", false, "List the students that would change without writing them.")

	for _, fs := range []*flag.FlagSet{resetPasswordCmd, addAccountCmd, reconcileCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword("Enter password:")
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, pwd)
	case "addaccount":
		if err := addAccountCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addAccountEmail == "" {
			addAccountCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword("Enter password:")
		if err != nil {
			return err
		}
		confirm, err := cli.readPassword("Confirm password:")
		if err != nil {
			return err
		}
		return cli.addAccount(*addAccountEmail, *addAccountRole, pwd, confirm)
	case "reconcile":
		if err := reconcileCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.reconcile(*reconcileDryRun)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) readPassword(label string) (string, error) {
	fmt.Fprint(cli.out, label)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	return string(pwd), err
}
