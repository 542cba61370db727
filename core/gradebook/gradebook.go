// Package gradebook coordinates the writes that span the Student, Grade and Professor tables.
//
// The Grade table holds the grade and mark of a student in every course it was
// recorded for. The grade and mark of a Student row are a copy of the Grade row of
// its current course, refreshed here on every write that affects them.
// Every input is validated before the first write. When a later write fails the
// earlier ones are kept and a *core.PartialWriteError is returned.
package gradebook

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/core/join"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/student"
)

var (
	// errors
	ErrNoProfessorAssigned = errors.New("no professor is assigned to this course")
	ErrCourseNotFound      = errors.New("course not found")
	ErrNothingToModify     = errors.New("nothing to modify")
)

const (
	tableStudent   = "student"
	tableGrade     = "grade"
	tableProfessor = "professor"
)

type CourseChecker interface {
	Exists(courseID string) (bool, error)
}

type Coordinator struct {
	students   *student.Service
	grades     *grade.Service
	professors *professor.Service
	courses    CourseChecker
	resolver   join.Resolver
	logger     core.Logger
}

func NewCoordinator(
	students *student.Service,
	grades *grade.Service,
	professors *professor.Service,
	courses CourseChecker,
	resolver join.Resolver,
	logger core.Logger,
) *Coordinator {
	return &Coordinator{
		students:   students,
		grades:     grades,
		professors: professors,
		courses:    courses,
		resolver:   resolver,
		logger:     logger,
	}
}

// Result describes the records written by an operation.
type Result struct {
	Grade          grade.Grade           `json:"grade"`
	Student        student.Student       `json:"student"`
	StudentCreated bool                  `json:"student_created"`
	Professors     []professor.Professor `json:"professors,omitempty"`
	Warnings       []string              `json:"warnings,omitempty"`
}

// gradeKey is the validation form of a grade.Key.
type gradeKey struct {
	FirstName string `json:"first_name" validate:"notblank,nodelim"`
	LastName  string `json:"last_name" validate:"notblank,nodelim"`
	CourseID  string `json:"course_id" validate:"notblank,nodelim"`
}

func cleanKey(key grade.Key) (grade.Key, error) {
	k := gradeKey{
		FirstName: core.CleanString(key.FirstName),
		LastName:  core.CleanString(key.LastName),
		CourseID:  core.CleanString(key.CourseID),
	}
	if err := core.Validate.Struct(k); err != nil {
		return grade.Key{}, err
	}
	return grade.Key{FirstName: k.FirstName, LastName: k.LastName, CourseID: k.CourseID}, nil
}

func (c *Coordinator) checkCourse(courseID string) error {
	exists, err := c.courses.Exists(courseID)
	if err != nil {
		return err
	}
	if !exists {
		return core.NewValidationError(ErrCourseNotFound, core.FieldError{Field: "course_id", Error: ErrCourseNotFound.Error()})
	}
	return nil
}

func (c *Coordinator) partial(err error, failed string, applied ...string) error {
	pErr := core.NewPartialWriteError(err, failed, applied...)
	c.logger.Error("multi-table write partially applied", pErr)
	return pErr
}

// AddGradeInput replaces the interactive choices of grade entry.
type AddGradeInput struct {
	// CreateStudent allows creating the Student row when it does not exist, using Email.
	CreateStudent bool
	Email         string
	// AllowUnassigned lets the grade be added to a course without professor.
	AllowUnassigned bool
	Entry           grading.Entry
}

// AddGrade records the grade of a student in a course.
func (c *Coordinator) AddGrade(key grade.Key, in AddGradeInput) (Result, error) {
	key, err := cleanKey(key)
	if err != nil {
		return Result{}, err
	}
	if err = c.grades.CheckAbsent(key); err != nil {
		return Result{}, err
	}

	var (
		res     Result
		ns      student.NewStudent
		created bool
	)
	st, err := c.students.Get(key.StudentKey())
	switch {
	case err == nil:
		if err = c.checkCourse(key.CourseID); err != nil {
			return Result{}, err
		}
	case errors.Is(err, student.ErrNotFound):
		if !in.CreateStudent {
			return Result{}, err
		}
		ns = student.NewStudent{
			FirstName: key.FirstName,
			LastName:  key.LastName,
			Email:     in.Email,
			CourseID:  key.CourseID,
			Entry:     in.Entry,
		}
		if err = ns.Validate(c.students); err != nil {
			return Result{}, err
		}
		created = true
	default:
		return Result{}, err
	}

	if _, found, err := c.resolver.ProfessorForCourse(key.CourseID); err != nil {
		return Result{}, err
	} else if !found {
		res.Warnings = append(res.Warnings, fmt.Sprintf("no professor is assigned to course %s", key.CourseID))
		if !in.AllowUnassigned {
			return res, ErrNoProfessorAssigned
		}
	}

	grd, mark, err := in.Entry.Resolve()
	if err != nil {
		return Result{}, err
	}
	email := st.Email
	if created {
		email = ns.Email
	}

	// writes
	res.Grade, err = c.grades.Create(grade.Grade{
		FirstName: key.FirstName,
		LastName:  key.LastName,
		CourseID:  key.CourseID,
		Email:     email,
		Grade:     grd,
		Mark:      mark,
	})
	if err != nil {
		return Result{}, err
	}

	switch {
	case created:
		if res.Student, err = c.students.Create(ns); err != nil {
			return res, c.partial(err, tableStudent, tableGrade)
		}
		res.StudentCreated = true
	case st.CourseID == key.CourseID:
		st.Grade, st.Mark = grd, mark
		if res.Student, err = c.students.Save(st); err != nil {
			return res, c.partial(err, tableStudent, tableGrade)
		}
	default:
		res.Student = st
	}
	return res, nil
}

// ProfessorAction says what to do with the professor of a course.
type ProfessorAction int

const (
	ProfessorKeep ProfessorAction = iota
	// ProfessorAssign assigns the named professor to the course.
	ProfessorAssign
	// ProfessorUnassign removes the course of its current professor.
	ProfessorUnassign
)

type ProfessorChange struct {
	Action ProfessorAction
	Name   string
	// UnassignPrevious also removes the course from the professor currently teaching it.
	UnassignPrevious bool
}

// planProfessorChange returns the professors to rewrite for change, without writing them.
func (c *Coordinator) planProfessorChange(courseID string, change ProfessorChange) ([]professor.Professor, error) {
	current, found, err := c.resolver.ProfessorForCourse(courseID)
	if err != nil {
		return nil, err
	}

	switch change.Action {
	case ProfessorAssign:
		if err = c.checkCourse(courseID); err != nil {
			return nil, err
		}
		prof, err := c.professors.Get(core.CleanString(change.Name))
		if err != nil {
			return nil, err
		}
		prof.CourseID = courseID
		plan := []professor.Professor{prof}
		if found && current.Name != prof.Name && change.UnassignPrevious {
			current.CourseID = ""
			plan = append(plan, current)
		}
		return plan, nil
	case ProfessorUnassign:
		if !found {
			return nil, ErrNoProfessorAssigned
		}
		current.CourseID = ""
		return []professor.Professor{current}, nil
	}
	return nil, nil
}

// ReassignProfessor assigns or unassigns the professor of a course.
func (c *Coordinator) ReassignProfessor(courseID string, change ProfessorChange) ([]professor.Professor, error) {
	courseID = core.CleanString(courseID)
	if change.Action == ProfessorKeep {
		return nil, core.NewValidationError(ErrNothingToModify)
	}
	plan, err := c.planProfessorChange(courseID, change)
	if err != nil {
		return nil, err
	}
	if err = c.professors.SaveAssignments(plan...); err != nil {
		return nil, err
	}
	return plan, nil
}

// ModifyGradeInput holds a new grade entry and/or a professor change. Zero values keep things as they are.
type ModifyGradeInput struct {
	Entry     grading.Entry
	Professor ProfessorChange
}

// ModifyGrade updates the grade of a student in a course and/or the professor of that course.
func (c *Coordinator) ModifyGrade(key grade.Key, in ModifyGradeInput) (Result, error) {
	key, err := cleanKey(key)
	if err != nil {
		return Result{}, err
	}
	g, err := c.grades.Get(key)
	if err != nil {
		return Result{}, err
	}
	if in.Entry.IsZero() && in.Professor.Action == ProfessorKeep {
		return Result{}, core.NewValidationError(ErrNothingToModify)
	}

	var grd, mark string
	if !in.Entry.IsZero() {
		if grd, mark, err = in.Entry.Resolve(); err != nil {
			return Result{}, err
		}
	}
	plan, err := c.planProfessorChange(key.CourseID, in.Professor)
	if err != nil {
		return Result{}, err
	}

	// writes
	res := Result{Grade: g}
	var applied []string
	if !in.Entry.IsZero() {
		g.Grade, g.Mark = grd, mark
		if res.Grade, err = c.grades.Save(g); err != nil {
			return Result{}, err
		}
		applied = append(applied, tableGrade)

		st, err := c.students.Get(key.StudentKey())
		switch {
		case err == nil && st.CourseID == key.CourseID:
			st.Grade, st.Mark = grd, mark
			if res.Student, err = c.students.Save(st); err != nil {
				return res, c.partial(err, tableStudent, applied...)
			}
			applied = append(applied, tableStudent)
		case err == nil:
			res.Student = st
		case !errors.Is(err, student.ErrNotFound):
			return res, c.partial(err, tableStudent, applied...)
		}
	}

	if len(plan) > 0 {
		if err = c.professors.SaveAssignments(plan...); err != nil {
			if len(applied) == 0 {
				return res, err
			}
			return res, c.partial(err, tableProfessor, applied...)
		}
		res.Professors = plan
	}
	return res, nil
}

// DeleteGrade removes the Grade row only; the Student row keeps its grade and mark.
func (c *Coordinator) DeleteGrade(key grade.Key) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	return c.grades.Delete(key)
}
