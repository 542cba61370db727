package course

import "github.com/trezcool/checkmygrade/core"

type Course struct {
	ID          string `json:"course_id"`
	Name        string `json:"course_name"`
	Credits     string `json:"credits"`
	Description string `json:"description"`
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	ID          string `json:"course_id" validate:"notblank,nodelim"`
	Name        string `json:"course_name" validate:"notblank,nodelim"`
	Credits     string `json:"credits" validate:"nodelim"`
	Description string `json:"description" validate:"nodelim"`
}

func (nc *NewCourse) Validate(svc *Service) error {
	nc.ID = core.CleanString(nc.ID)
	nc.Name = core.CleanString(nc.Name)
	nc.Credits = core.CleanString(nc.Credits)
	nc.Description = core.CleanString(nc.Description)

	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	exists, err := svc.Exists(nc.ID)
	if err != nil {
		return err
	}
	if exists {
		return core.NewValidationError(ErrExists, core.FieldError{Field: "course_id", Error: ErrExists.Error()})
	}
	return nil
}

// UpdateCourse defines what information may be provided to modify an existing Course.
// Empty values keep the current ones.
type UpdateCourse struct {
	Name        string `json:"course_name" validate:"notblank,nodelim"`
	Credits     string `json:"credits" validate:"nodelim"`
	Description string `json:"description" validate:"nodelim"`
}

func (uc *UpdateCourse) Validate(orig Course) error {
	if name := core.CleanString(uc.Name); name != "" {
		uc.Name = name
	} else {
		uc.Name = orig.Name
	}
	if credits := core.CleanString(uc.Credits); credits != "" {
		uc.Credits = credits
	} else {
		uc.Credits = orig.Credits
	}
	if descr := core.CleanString(uc.Description); descr != "" {
		uc.Description = descr
	} else {
		uc.Description = orig.Description
	}
	return core.Validate.Struct(uc)
}
