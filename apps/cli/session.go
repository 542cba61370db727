// Package cli is the interactive menu of CheckMyGrade.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/core/authz"
	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/services/metrics"
)

// Session is one logged in user driving the menu.
type Session struct {
	app *apps.App
	in  Prompter
	out io.Writer
	acc account.Account
}

func NewSession(app *apps.App, in Prompter, out io.Writer) *Session {
	return &Session{app: app, in: in, out: out}
}

type menuItem struct {
	label string
	perm  authz.Permission
	run   func(s *Session) error
}

var professorMenu = []menuItem{
	{"Add Student Records", authz.Permission{Resource: authz.Student, Action: authz.Write}, (*Session).addStudent},
	{"Modify Student Records", authz.Permission{Resource: authz.Student, Action: authz.Write}, (*Session).modifyStudent},
	{"Delete Student Records", authz.Permission{Resource: authz.Student, Action: authz.Delete}, (*Session).deleteStudent},
	{"Add Professor Information", authz.Permission{Resource: authz.Professor, Action: authz.Write}, (*Session).addProfessor},
	{"Modify Professor Information", authz.Permission{Resource: authz.Professor, Action: authz.Write}, (*Session).modifyProfessor},
	{"Delete Professor Information", authz.Permission{Resource: authz.Professor, Action: authz.Delete}, (*Session).deleteProfessor},
	{"Add Course Information", authz.Permission{Resource: authz.Course, Action: authz.Write}, (*Session).addCourse},
	{"Modify Course Information", authz.Permission{Resource: authz.Course, Action: authz.Write}, (*Session).modifyCourse},
	{"Delete Course Information", authz.Permission{Resource: authz.Course, Action: authz.Delete}, (*Session).deleteCourse},
	{"Add Grade Record", authz.Permission{Resource: authz.Grade, Action: authz.Write}, (*Session).addGrade},
	{"Modify Grade Record", authz.Permission{Resource: authz.Grade, Action: authz.Write}, (*Session).modifyGrade},
	{"Delete Grade Record", authz.Permission{Resource: authz.Grade, Action: authz.Delete}, (*Session).deleteGrade},
	{"View Average Grade for a Course", authz.Permission{Resource: authz.Stats, Action: authz.Read}, (*Session).meanGrade},
	{"View Median Grade for a Course", authz.Permission{Resource: authz.Stats, Action: authz.Read}, (*Session).medianGrade},
	{"Search Student Records", authz.Permission{Resource: authz.Student, Action: authz.Search}, (*Session).searchStudents},
	{"Sort Students by Name", authz.Permission{Resource: authz.Student, Action: authz.Sort}, (*Session).sortByName},
	{"Sort Students by Marks", authz.Permission{Resource: authz.Student, Action: authz.Sort}, (*Session).sortByMark},
	{"Sort Students by Email", authz.Permission{Resource: authz.Student, Action: authz.Sort}, (*Session).sortByEmail},
	{"Generate Course-wise Report", authz.Permission{Resource: authz.Report, Action: authz.Read}, (*Session).courseReport},
	{"Generate Professor-wise Report", authz.Permission{Resource: authz.Report, Action: authz.Read}, (*Session).professorReport},
	{"Generate Student-wise Report", authz.Permission{Resource: authz.Report, Action: authz.Read}, (*Session).studentReport},
	{"Change Password", authz.Permission{Resource: authz.Account, Action: authz.ChangePassword}, (*Session).changePassword},
}

var studentMenu = []menuItem{
	{"View Personal Grade Information", authz.Permission{Resource: authz.Student, Action: authz.ReadOwn}, (*Session).ownDetails},
	{"View Personal Report", authz.Permission{Resource: authz.Report, Action: authz.ReadOwn}, (*Session).ownReport},
	{"Change Password", authz.Permission{Resource: authz.Account, Action: authz.ChangePassword}, (*Session).changePassword},
}

// Run shows the welcome screen, logs the user in and runs the menu of its role.
// It returns nil when the user exits or the input ends.
func (s *Session) Run() error {
	s.println("Welcome to CheckMyGrade!")
	s.println("Please log in to continue.")

	err := s.run()
	if err == errQuit {
		return nil
	}
	return err
}

func (s *Session) run() error {
	for {
		ok, err := s.login()
		if err != nil {
			return err
		}
		if ok {
			break
		}
		quit, err := s.confirm("\nWould you like to exit the application?")
		if err != nil {
			return err
		}
		if quit {
			s.println("Thank you for using CheckMyGrade. Goodbye!")
			return nil
		}
	}

	switch {
	case s.acc.IsProfessor():
		return s.menu("Professor Menu", professorMenu)
	case s.acc.IsStudent():
		return s.menu("Student Menu", studentMenu)
	}
	s.println("Unknown role. Exiting.")
	return nil
}

func (s *Session) login() (bool, error) {
	for {
		s.println("\n--- Login ---")
		email, err := s.in.Prompt("Email: ")
		if err != nil {
			return false, err
		}
		pwd, err := s.in.PasswordPrompt("Password: ")
		if err != nil {
			return false, err
		}

		acc, err := s.app.Accounts.Login(account.Login{Email: email, Password: pwd})
		if err == nil {
			s.acc = acc
			s.app.Logger.Info("menu login", acc)
			s.printf("Login successful as %s\n", acc.Role)
			return true, nil
		}
		s.fail(err)

		create, err := s.confirm("\nWould you like to create a new account?")
		if err != nil || !create {
			return false, err
		}
		created, err := s.createAccount()
		if err != nil || !created {
			return false, err
		}
		s.println("\nAccount created successfully! Please login with your new credentials.")
	}
}

func (s *Session) createAccount() (bool, error) {
	rule := strings.Repeat("=", 60)
	s.printf("\n%s\nCREATE NEW ACCOUNT\n%s\n", rule, rule)

	var na account.NewAccount
	var err error
	if na.Email, err = s.in.Prompt("Enter your email: "); err != nil {
		return false, err
	}
	if na.Password, err = s.in.PasswordPrompt("Enter your password: "); err != nil {
		return false, err
	}
	if na.PasswordConfirm, err = s.in.PasswordPrompt("Confirm your password: "); err != nil {
		return false, err
	}
	if na.Password != na.PasswordConfirm {
		s.println("Error: Passwords do not match. Account creation failed.")
		return false, nil
	}
	if na.Role, err = s.choose("Select your role", account.Roles...); err != nil {
		return false, err
	}

	if _, err = s.app.Accounts.Create(na); err != nil {
		s.fail(err)
		return false, nil
	}
	return true, nil
}

func (s *Session) menu(title string, items []menuItem) error {
	allowed := make([]menuItem, 0, len(items))
	for _, item := range items {
		if s.app.Enforcer.Can(s.acc.Role, item.perm) {
			allowed = append(allowed, item)
		}
	}

	for {
		s.printf("\n%s:\n", title)
		for i, item := range allowed {
			s.printf("%d. %s\n", i+1, item.label)
		}
		s.printf("%d. Exit\n", len(allowed)+1)

		choice, err := s.in.Prompt("Enter your choice: ")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(choice))
		switch {
		case err != nil || n < 1 || n > len(allowed)+1:
			s.println("Invalid choice. Please try again.")
			continue
		case n == len(allowed)+1:
			s.printf("Exiting %s.\n", title)
			return nil
		}

		if err = allowed[n-1].run(s); err != nil {
			if err == errQuit {
				return err
			}
			s.fail(err)
		}
	}
}

// Prompt helpers

func (s *Session) ask(label string) (string, error) {
	v, err := s.in.Prompt(label + ": ")
	return strings.TrimSpace(v), err
}

// askDefault returns def when the answer is empty.
func (s *Session) askDefault(label, def string) (string, error) {
	v, err := s.ask(fmt.Sprintf("%s [%s]", label, def))
	if err != nil || v != "" {
		return v, err
	}
	return def, nil
}

// choose asks until the answer is one of options (case-insensitive) and returns that option.
func (s *Session) choose(label string, options ...string) (string, error) {
	for {
		v, err := s.ask(fmt.Sprintf("%s (%s)", label, strings.Join(options, ", ")))
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if strings.EqualFold(v, opt) {
				return opt, nil
			}
		}
		s.printf("Error: %q is not one of %s.\n", v, strings.Join(options, ", "))
	}
}

func (s *Session) confirm(label string) (bool, error) {
	v, err := s.choose(label, "yes", "no")
	return v == "yes", err
}

// askNumber returns 0 when the answer is not a number between 1 and max.
func (s *Session) askNumber(max int) (int, error) {
	v, err := s.ask(fmt.Sprintf("Enter your choice (1-%d)", max))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > max {
		s.println("Invalid choice.")
		return 0, nil
	}
	return n, nil
}

// askEntry asks for a mark or a letter grade.
func (s *Session) askEntry() (grading.Entry, bool, error) {
	s.println("\nHow would you like to enter the grade?")
	s.println("1. Enter numerical mark (0-100) - grade will be calculated automatically")
	s.println("2. Enter letter grade (A, B, C, D, F) - representative mark will be assigned")
	switch n, err := s.askNumber(2); {
	case err != nil:
		return grading.Entry{}, false, err
	case n == 1:
		mark, err := s.ask("Mark (0-100)")
		return grading.Entry{Mark: mark}, true, err
	case n == 2:
		letter, err := s.ask("Grade (A/B/C/D/F)")
		return grading.Entry{Letter: letter}, true, err
	}
	return grading.Entry{}, false, nil
}

// Output helpers

func (s *Session) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Session) fail(err error) {
	var vErr *core.ValidationError
	switch {
	case core.IsPartialWrite(err):
		metrics.IncPartialWrites()
		s.printf("Warning: the change was only partially saved. %v\n", err)
	case errors.As(err, &vErr) && len(vErr.Fields) > 0:
		for _, fErr := range vErr.Fields {
			s.printf("Error: %s\n", fErr.Error)
		}
	default:
		s.printf("Error: %v\n", err)
	}
}
