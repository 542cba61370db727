// Package report assembles the student, grade, course and professor reports.
package report

import (
	"github.com/trezcool/checkmygrade/core/course"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/join"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/stats"
	"github.com/trezcool/checkmygrade/core/student"
)

type (
	StudentReport struct {
		Student student.Student `json:"student"`
	}

	GradeReport struct {
		CourseID       string `json:"course"`
		ProfessorName  string `json:"professor_name"`
		ProfessorEmail string `json:"professor_email"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Email          string `json:"email"`
		Grade          string `json:"grade"`
		Mark           string `json:"mark"`
	}

	CourseReport struct {
		Course    course.Course     `json:"course"`
		Professor string            `json:"professor"`
		Students  []student.Student `json:"students"`
		// Average is the mean mark of the students whose mark can be resolved.
		Average stats.Result `json:"average"`
	}

	ProfessorReport struct {
		Professor professor.Professor `json:"professor"`
		Students  []student.Student   `json:"students"`
	}
)

type (
	StudentGetter interface {
		Get(key student.Key) (student.Student, error)
	}

	GradeGetter interface {
		Get(key grade.Key) (grade.Grade, error)
	}

	CourseGetter interface {
		Get(id string) (course.Course, error)
	}
)

type Service struct {
	students StudentGetter
	grades   GradeGetter
	courses  CourseGetter
	resolver join.Resolver
}

func NewService(students StudentGetter, grades GradeGetter, courses CourseGetter, resolver join.Resolver) *Service {
	return &Service{students: students, grades: grades, courses: courses, resolver: resolver}
}

func (svc *Service) Student(key student.Key) (StudentReport, error) {
	st, err := svc.students.Get(key)
	if err != nil {
		return StudentReport{}, err
	}
	return StudentReport{Student: st}, nil
}

func (svc *Service) Grade(key grade.Key) (GradeReport, error) {
	g, err := svc.grades.Get(key)
	if err != nil {
		return GradeReport{}, err
	}
	prof, found, err := svc.resolver.ProfessorForCourse(key.CourseID)
	if err != nil {
		return GradeReport{}, err
	}
	name, email := join.ProfessorLabel(prof, found)
	return GradeReport{
		CourseID:       g.CourseID,
		ProfessorName:  name,
		ProfessorEmail: email,
		FirstName:      g.FirstName,
		LastName:       g.LastName,
		Email:          g.Email,
		Grade:          g.Grade,
		Mark:           g.Mark,
	}, nil
}

func (svc *Service) Course(id string) (CourseReport, error) {
	c, err := svc.courses.Get(id)
	if err != nil {
		return CourseReport{}, err
	}
	prof, found, err := svc.resolver.ProfessorForCourse(id)
	if err != nil {
		return CourseReport{}, err
	}
	name, _ := join.ProfessorLabel(prof, found)

	students, err := svc.resolver.StudentsInCourse(id)
	if err != nil {
		return CourseReport{}, err
	}
	marks := stats.Marks(students)
	return CourseReport{
		Course:    c,
		Professor: name,
		Students:  students,
		Average:   stats.Result{Value: stats.MeanOf(marks), Count: len(marks)},
	}, nil
}

func (svc *Service) Professor(name string) (ProfessorReport, error) {
	prof, students, err := svc.resolver.StudentsOfProfessor(name)
	if err != nil {
		return ProfessorReport{}, err
	}
	return ProfessorReport{Professor: prof, Students: students}, nil
}
