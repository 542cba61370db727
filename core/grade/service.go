package grade

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core/student"
)

var (
	// errors
	ErrNotFound = errors.New("grade not found")
	ErrExists   = errors.New("student grade already exists")
)

type (
	Repository interface {
		CreateGrade(g Grade) (Grade, error)
		// QueryAllGrades returns the grades in table order.
		QueryAllGrades() ([]Grade, error)
		GetGrade(key Key) (Grade, error)
		UpdateGrade(g Grade) (Grade, error)
		DeleteGrade(key Key) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CheckAbsent returns ErrExists if a grade is already recorded for key.
func (svc *Service) CheckAbsent(key Key) error {
	_, err := svc.repo.GetGrade(key)
	switch {
	case err == nil:
		return ErrExists
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return err
	}
}

func (svc *Service) Create(g Grade) (Grade, error) {
	return svc.repo.CreateGrade(g)
}

func (svc *Service) QueryAll() ([]Grade, error) {
	return svc.repo.QueryAllGrades()
}

func (svc *Service) Get(key Key) (Grade, error) {
	return svc.repo.GetGrade(key)
}

// Current returns the grade of s in its current course.
func (svc *Service) Current(s student.Student) (Grade, error) {
	return svc.repo.GetGrade(NewKey(s.Key(), s.CourseID))
}

// Find returns the grade for key, reporting false when there is none.
func (svc *Service) Find(key Key) (Grade, bool, error) {
	g, err := svc.repo.GetGrade(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Grade{}, false, nil
		}
		return Grade{}, false, err
	}
	return g, true, nil
}

func (svc *Service) Save(g Grade) (Grade, error) {
	return svc.repo.UpdateGrade(g)
}

func (svc *Service) Delete(key Key) error {
	return svc.repo.DeleteGrade(key)
}
