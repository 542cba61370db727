package professor

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
)

type Professor struct {
	Name     string `json:"professor_name"`
	Email    string `json:"email"`
	Rank     string `json:"rank"`
	CourseID string `json:"course_id"` // empty when unassigned
}

func (p Professor) IsAssigned() bool { return p.CourseID != "" }

// NewProfessor contains information needed to create a new Professor.
type NewProfessor struct {
	Name     string `json:"professor_name" validate:"notblank,nodelim"`
	Email    string `json:"email" validate:"notblank,nodelim"`
	Rank     string `json:"rank" validate:"nodelim"`
	CourseID string `json:"course_id" validate:"nodelim"`
}

func (np *NewProfessor) Validate(svc *Service) error {
	np.Name = core.CleanString(np.Name)
	np.Email = core.CleanString(np.Email)
	np.Rank = core.CleanString(np.Rank)
	np.CourseID = core.CleanString(np.CourseID)

	if err := core.Validate.Struct(np); err != nil {
		return err
	}
	if _, err := svc.repo.GetProfessor(np.Name); err == nil {
		return core.NewValidationError(ErrExists, core.FieldError{Field: "professor_name", Error: ErrExists.Error()})
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := svc.checkEmailUniqueness(np.Email); err != nil {
		return err
	}
	return svc.checkCourse(np.CourseID)
}

// UpdateProfessor defines what information may be provided to modify an existing Professor.
// Empty values keep the current ones.
type UpdateProfessor struct {
	Email    string `json:"email" validate:"notblank,nodelim"`
	Rank     string `json:"rank" validate:"nodelim"`
	CourseID string `json:"course_id" validate:"nodelim"`
}

func (up *UpdateProfessor) Validate(orig Professor, svc *Service) error {
	if email := core.CleanString(up.Email); email != "" {
		up.Email = email
	} else {
		up.Email = orig.Email
	}
	if rank := core.CleanString(up.Rank); rank != "" {
		up.Rank = rank
	} else {
		up.Rank = orig.Rank
	}
	courseID := core.CleanString(up.CourseID)
	if courseID != "" {
		up.CourseID = courseID
	} else {
		up.CourseID = orig.CourseID
	}

	if err := core.Validate.Struct(up); err != nil {
		return err
	}
	if err := svc.checkEmailUniqueness(up.Email, orig.Name); err != nil {
		return err
	}
	if courseID != "" && courseID != orig.CourseID {
		return svc.checkCourse(courseID)
	}
	return nil
}
