package testutil

import (
	"testing"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/core/course"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/student"
	"github.com/trezcool/checkmygrade/storage/flatfile"
)

// Logger records warnings and errors for assertions.
type Logger struct {
	core.NopLogger
	Warnings []string
	Errors   []string
}

func (l *Logger) Warn(msg string, _ ...interface{})  { l.Warnings = append(l.Warnings, msg) }
func (l *Logger) Error(msg string, _ ...interface{}) { l.Errors = append(l.Errors, msg) }

// NewApp wires an App on an empty data directory.
func NewApp(t *testing.T) (*apps.App, *Logger) {
	t.Helper()
	logger := &Logger{}
	app, err := apps.New(core.NewTestConfig(t.TempDir()), logger)
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	return app, logger
}

func CreateCourse(t *testing.T, db *flatfile.DB, id, name string) course.Course {
	t.Helper()
	c, err := flatfile.NewCourseRepository(db).CreateCourse(course.Course{ID: id, Name: name, Credits: "3", Description: name})
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return c
}

func CreateProfessor(t *testing.T, db *flatfile.DB, name, email, courseID string) professor.Professor {
	t.Helper()
	p, err := flatfile.NewProfessorRepository(db).CreateProfessor(professor.Professor{Name: name, Email: email, Rank: "Senior", CourseID: courseID})
	if err != nil {
		t.Fatalf("createProfessor() failed: %v", err)
	}
	return p
}

func CreateStudent(t *testing.T, db *flatfile.DB, first, last, email, courseID, grd, mark string) student.Student {
	t.Helper()
	s, err := flatfile.NewStudentRepository(db).CreateStudent(student.Student{
		FirstName: first,
		LastName:  last,
		Email:     email,
		CourseID:  courseID,
		Grade:     grd,
		Mark:      mark,
	})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return s
}

func CreateGrade(t *testing.T, db *flatfile.DB, s student.Student, courseID, grd, mark string) grade.Grade {
	t.Helper()
	g, err := flatfile.NewGradeRepository(db).CreateGrade(grade.Grade{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		CourseID:  courseID,
		Email:     s.Email,
		Grade:     grd,
		Mark:      mark,
	})
	if err != nil {
		t.Fatalf("createGrade() failed: %v", err)
	}
	return g
}

// CreateEnrolled creates a student and the matching grade of its course.
func CreateEnrolled(t *testing.T, db *flatfile.DB, first, last, email, courseID, grd, mark string) student.Student {
	t.Helper()
	s := CreateStudent(t, db, first, last, email, courseID, grd, mark)
	CreateGrade(t, db, s, courseID, grd, mark)
	return s
}

func CreateAccount(t *testing.T, app *apps.App, email, password, role string) account.Account {
	t.Helper()
	acc, err := app.Accounts.Create(account.NewAccount{
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
		Role:            role,
	})
	if err != nil {
		t.Fatalf("createAccount() failed: %v", err)
	}
	return acc
}
