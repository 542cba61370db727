package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// reconcile copies the current-course grades onto the Student table and
// prints the resulting change of the student file as a unified diff.
func (cli *commandLine) reconcile(dryRun bool) error {
	path := cli.app.Conf.Path(cli.app.Conf.Files.Student)
	before, err := readLines(path)
	if err != nil {
		return err
	}

	changed, err := cli.app.Gradebook.Reconcile(dryRun)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		fmt.Fprintln(cli.out, "Nothing to reconcile.")
		return nil
	}
	if dryRun {
		for _, st := range changed {
			fmt.Fprintf(cli.out, "%s (%s): Grade %s, Mark %s\n", st.FullName(), st.CourseID, st.Grade, st.Mark)
		}
		fmt.Fprintf(cli.out, "%d student(s) would be updated.\n", len(changed))
		return nil
	}

	after, err := readLines(path)
	if err != nil {
		return err
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  0,
	})
	if err != nil {
		return errors.Wrap(err, "diffing student table")
	}
	fmt.Fprint(cli.out, diff)
	fmt.Fprintf(cli.out, "%d student(s) updated.\n", len(changed))
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return difflib.SplitLines(string(data)), nil
}
