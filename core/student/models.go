package student

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/grading"
)

// Student is a student enrolled in a single current course.
// Grade and Mark mirror the Grade row of that course.
type Student struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CourseID  string `json:"course_id"`
	Grade     string `json:"grade"`
	Mark      string `json:"mark"`
}

// Key identifies a Student.
type Key struct {
	FirstName string
	LastName  string
}

func (k Key) String() string { return k.FirstName + " " + k.LastName }

func (s Student) Key() Key { return Key{FirstName: s.FirstName, LastName: s.LastName} }

func (s Student) FullName() string { return s.FirstName + " " + s.LastName }

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	FirstName string        `json:"first_name" validate:"notblank,nodelim"`
	LastName  string        `json:"last_name" validate:"notblank,nodelim"`
	Email     string        `json:"email" validate:"notblank,nodelim"`
	CourseID  string        `json:"course_id" validate:"notblank,nodelim"`
	Entry     grading.Entry `json:"entry"`

	grade, mark string
}

func (ns *NewStudent) Key() Key { return Key{FirstName: ns.FirstName, LastName: ns.LastName} }

// Validate cleans ns and checks it against the Student table and the courses.
func (ns *NewStudent) Validate(svc *Service) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email)
	ns.CourseID = core.CleanString(ns.CourseID)

	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	if _, err := svc.repo.GetStudent(ns.Key()); err == nil {
		return core.NewValidationError(ErrExists, core.FieldError{Field: "name", Error: ErrExists.Error()})
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := svc.checkEmailUniqueness(ns.Email); err != nil {
		return err
	}
	if err := svc.checkCourse(ns.CourseID); err != nil {
		return err
	}

	grade, mark, err := ns.Entry.Resolve()
	if err != nil {
		return err
	}
	ns.grade, ns.mark = grade, mark
	return nil
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Empty values keep the current ones.
type UpdateStudent struct {
	Email    string        `json:"email" validate:"notblank,nodelim"`
	CourseID string        `json:"course_id" validate:"notblank,nodelim"`
	Entry    grading.Entry `json:"entry"`

	grade, mark string
}

// CourseChanged reports whether the validated update moves the student to another course.
func (us *UpdateStudent) CourseChanged(orig Student) bool { return us.CourseID != orig.CourseID }

func (us *UpdateStudent) Validate(orig Student, svc *Service) error {
	if email := core.CleanString(us.Email); email != "" {
		us.Email = email
	} else {
		us.Email = orig.Email
	}
	if courseID := core.CleanString(us.CourseID); courseID != "" {
		us.CourseID = courseID
	} else {
		us.CourseID = orig.CourseID
	}

	if err := core.Validate.Struct(us); err != nil {
		return err
	}
	if us.Email != orig.Email {
		if err := svc.checkEmailUniqueness(us.Email, orig.Key()); err != nil {
			return err
		}
	}
	if us.CourseChanged(orig) {
		if err := svc.checkCourse(us.CourseID); err != nil {
			return err
		}
	}

	us.grade, us.mark = orig.Grade, orig.Mark
	if !us.Entry.IsZero() {
		grade, mark, err := us.Entry.Resolve()
		if err != nil {
			return err
		}
		us.grade, us.mark = grade, mark
	}
	return nil
}

// HasEntry reports whether the update carries a new grade or mark.
func (us *UpdateStudent) HasEntry() bool { return !us.Entry.IsZero() }
