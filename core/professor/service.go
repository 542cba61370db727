package professor

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
)

var (
	// errors
	ErrNotFound       = errors.New("professor not found")
	ErrExists         = errors.New("professor already exists")
	ErrEmailExists    = errors.New("a professor with this email already exists")
	ErrCourseNotFound = errors.New("course not found")
)

type (
	Repository interface {
		// CheckEmailUniqueness returns ErrEmailExists if a professor other than excludedNames uses email.
		CheckEmailUniqueness(email string, excludedNames ...string) error
		CreateProfessor(p Professor) (Professor, error)
		QueryAllProfessors() ([]Professor, error)
		GetProfessor(name string) (Professor, error)
		// UpdateProfessors rewrites every given professor in a single write of the table.
		UpdateProfessors(profs ...Professor) error
		DeleteProfessor(name string) error
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

func (svc *Service) checkEmailUniqueness(email string, excludedNames ...string) error {
	if err := svc.repo.CheckEmailUniqueness(email, excludedNames...); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) checkCourse(courseID string) error {
	if courseID == "" {
		return nil
	}
	exists, err := svc.courses.Exists(courseID)
	if err != nil {
		return err
	}
	if !exists {
		return core.NewValidationError(ErrCourseNotFound, core.FieldError{Field: "course_id", Error: ErrCourseNotFound.Error()})
	}
	return nil
}

func (svc *Service) Create(np NewProfessor) (Professor, error) {
	if err := np.Validate(svc); err != nil {
		return Professor{}, err
	}
	return svc.repo.CreateProfessor(Professor{
		Name:     np.Name,
		Email:    np.Email,
		Rank:     np.Rank,
		CourseID: np.CourseID,
	})
}

func (svc *Service) QueryAll() ([]Professor, error) {
	return svc.repo.QueryAllProfessors()
}

func (svc *Service) Get(name string) (Professor, error) {
	return svc.repo.GetProfessor(name)
}

func (svc *Service) Update(name string, up UpdateProfessor) (Professor, error) {
	orig, err := svc.repo.GetProfessor(name)
	if err != nil {
		return Professor{}, err
	}
	if err := up.Validate(orig, svc); err != nil {
		return Professor{}, err
	}
	prof := Professor{Name: orig.Name, Email: up.Email, Rank: up.Rank, CourseID: up.CourseID}
	if err := svc.repo.UpdateProfessors(prof); err != nil {
		return Professor{}, err
	}
	return prof, nil
}

// SaveAssignments persists course assignment changes in a single write.
func (svc *Service) SaveAssignments(profs ...Professor) error {
	if len(profs) == 0 {
		return nil
	}
	return svc.repo.UpdateProfessors(profs...)
}

func (svc *Service) Delete(name string) error {
	return svc.repo.DeleteProfessor(name)
}
