package course

import (
	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
	ErrExists   = errors.New("course already exists")
)

type (
	Repository interface {
		CreateCourse(c Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourse(id string) (Course, error)
		UpdateCourse(c Course) (Course, error)
		DeleteCourse(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Exists reports whether a course with id is in the Course table.
func (svc *Service) Exists(id string) (bool, error) {
	if _, err := svc.repo.GetCourse(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	if err := nc.Validate(svc); err != nil {
		return Course{}, err
	}
	return svc.repo.CreateCourse(Course{
		ID:          nc.ID,
		Name:        nc.Name,
		Credits:     nc.Credits,
		Description: nc.Description,
	})
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) Get(id string) (Course, error) {
	return svc.repo.GetCourse(id)
}

func (svc *Service) Update(id string, uc UpdateCourse) (Course, error) {
	orig, err := svc.repo.GetCourse(id)
	if err != nil {
		return Course{}, err
	}
	if err := uc.Validate(orig); err != nil {
		return Course{}, err
	}
	return svc.repo.UpdateCourse(Course{
		ID:          orig.ID,
		Name:        uc.Name,
		Credits:     uc.Credits,
		Description: uc.Description,
	})
}

// Delete removes the course only. Students, grades and professors referencing it are left as is.
func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteCourse(id)
}
