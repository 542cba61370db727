package student

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
)

var (
	// errors
	ErrNotFound       = errors.New("student not found")
	ErrExists         = errors.New("student already exists")
	ErrEmailExists    = errors.New("a student with this email already exists")
	ErrCourseNotFound = errors.New("course not found")
)

type (
	Repository interface {
		// CheckEmailUniqueness returns ErrEmailExists if a student other than excludedKeys uses email.
		CheckEmailUniqueness(email string, excludedKeys ...Key) error
		CreateStudent(s Student) (Student, error)
		// QueryAllStudents returns the students in table order.
		QueryAllStudents() ([]Student, error)
		GetStudent(key Key) (Student, error)
		UpdateStudent(s Student) (Student, error)
		// UpdateStudents rewrites every given student in a single write of the table.
		UpdateStudents(students ...Student) error
		DeleteStudent(key Key) error
	}

	// CourseChecker reports whether a course exists.
	CourseChecker interface {
		Exists(courseID string) (bool, error)
	}

	Service struct {
		repo    Repository
		courses CourseChecker
	}
)

func NewService(repo Repository, courses CourseChecker) *Service {
	return &Service{repo: repo, courses: courses}
}

// CheckEmailUniqueness is the validation form of Repository.CheckEmailUniqueness.
func (svc *Service) CheckEmailUniqueness(email string, excludedKeys ...Key) error {
	return svc.checkEmailUniqueness(email, excludedKeys...)
}

func (svc *Service) checkEmailUniqueness(email string, excludedKeys ...Key) error {
	if err := svc.repo.CheckEmailUniqueness(email, excludedKeys...); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) checkCourse(courseID string) error {
	exists, err := svc.courses.Exists(courseID)
	if err != nil {
		return err
	}
	if !exists {
		return core.NewValidationError(ErrCourseNotFound, core.FieldError{Field: "course_id", Error: ErrCourseNotFound.Error()})
	}
	return nil
}

// Create writes a student validated with NewStudent.Validate.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(Student{
		FirstName: ns.FirstName,
		LastName:  ns.LastName,
		Email:     ns.Email,
		CourseID:  ns.CourseID,
		Grade:     ns.grade,
		Mark:      ns.mark,
	})
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) Get(key Key) (Student, error) {
	return svc.repo.GetStudent(key)
}

// Apply returns orig with the validated update applied. Nothing is written.
func (svc *Service) Apply(orig Student, us UpdateStudent) Student {
	orig.Email = us.Email
	orig.CourseID = us.CourseID
	orig.Grade = us.grade
	orig.Mark = us.mark
	return orig
}

// Save rewrites an existing student.
func (svc *Service) Save(s Student) (Student, error) {
	return svc.repo.UpdateStudent(s)
}

// SaveAll rewrites existing students in a single write.
func (svc *Service) SaveAll(students ...Student) error {
	if len(students) == 0 {
		return nil
	}
	return svc.repo.UpdateStudents(students...)
}

func (svc *Service) Delete(key Key) error {
	return svc.repo.DeleteStudent(key)
}
