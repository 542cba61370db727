// Package join resolves the relationships between students, courses and professors.
package join

import (
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/student"
)

// Shown in place of a professor when none is assigned to a course.
const (
	NotAssigned = "Not assigned"
	NoEmail     = "N/A"
)

// Resolver resolves course ↔ professor ↔ student relationships.
type Resolver interface {
	// ProfessorForCourse returns the first professor, in table order, assigned to courseID.
	ProfessorForCourse(courseID string) (professor.Professor, bool, error)
	// StudentsInCourse returns the students currently in courseID, in table order.
	StudentsInCourse(courseID string) ([]student.Student, error)
	// CourseOfProfessor returns the professor named name (whose CourseID is the course).
	CourseOfProfessor(name string) (professor.Professor, error)
	// StudentsOfProfessor returns the professor and the students of their course.
	StudentsOfProfessor(name string) (professor.Professor, []student.Student, error)
}

type (
	StudentLister interface {
		QueryAll() ([]student.Student, error)
	}

	ProfessorFinder interface {
		QueryAll() ([]professor.Professor, error)
		Get(name string) (professor.Professor, error)
	}
)

// ScanResolver resolves relationships with full scans of the tables.
type ScanResolver struct {
	students   StudentLister
	professors ProfessorFinder
}

var _ Resolver = (*ScanResolver)(nil)

func NewScanResolver(students StudentLister, professors ProfessorFinder) *ScanResolver {
	return &ScanResolver{students: students, professors: professors}
}

func (r *ScanResolver) ProfessorForCourse(courseID string) (professor.Professor, bool, error) {
	profs, err := r.professors.QueryAll()
	if err != nil {
		return professor.Professor{}, false, err
	}
	for _, p := range profs {
		if p.CourseID == courseID {
			return p, true, nil
		}
	}
	return professor.Professor{}, false, nil
}

func (r *ScanResolver) StudentsInCourse(courseID string) ([]student.Student, error) {
	students, err := r.students.QueryAll()
	if err != nil {
		return nil, err
	}
	return student.InCourse(students, courseID), nil
}

func (r *ScanResolver) CourseOfProfessor(name string) (professor.Professor, error) {
	return r.professors.Get(name)
}

func (r *ScanResolver) StudentsOfProfessor(name string) (professor.Professor, []student.Student, error) {
	prof, err := r.professors.Get(name)
	if err != nil {
		return professor.Professor{}, nil, err
	}
	if !prof.IsAssigned() {
		return prof, []student.Student{}, nil
	}
	students, err := r.StudentsInCourse(prof.CourseID)
	if err != nil {
		return professor.Professor{}, nil, err
	}
	return prof, students, nil
}

// ProfessorLabel returns the name and email shown for the professor of a course.
func ProfessorLabel(p professor.Professor, found bool) (name, email string) {
	if !found {
		return NotAssigned, NoEmail
	}
	email = p.Email
	if email == "" {
		email = NoEmail
	}
	return p.Name, email
}
