package student

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core/grading"
)

type (
	SortField string
	Order     string
)

const (
	SortByName  SortField = "name"
	SortByMark  SortField = "mark"
	SortByEmail SortField = "email"

	Asc  Order = "asc"
	Desc Order = "desc"
)

var (
	ErrInvalidSortField = errors.New("sort must be one of name, mark, email")
	ErrInvalidOrder     = errors.New("order must be asc or desc")
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByName, SortByMark, SortByEmail:
		return f, nil
	case "":
		return SortByName, nil
	}
	return "", ErrInvalidSortField
}

func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case Asc, Desc:
		return o, nil
	case "":
		return Asc, nil
	}
	return "", ErrInvalidOrder
}

func lessFunc(students []Student, field SortField) func(i, j int) bool {
	switch field {
	case SortByMark:
		return func(i, j int) bool {
			return grading.SortKey(students[i].Mark) < grading.SortKey(students[j].Mark)
		}
	case SortByEmail:
		return func(i, j int) bool {
			return strings.ToLower(students[i].Email) < strings.ToLower(students[j].Email)
		}
	default:
		return func(i, j int) bool {
			li, lj := strings.ToLower(students[i].LastName), strings.ToLower(students[j].LastName)
			if li != lj {
				return li < lj
			}
			return strings.ToLower(students[i].FirstName) < strings.ToLower(students[j].FirstName)
		}
	}
}

// Sort returns a stably sorted copy of students.
// Descending order keeps equal elements in table order.
func Sort(students []Student, field SortField, order Order) []Student {
	sorted := make([]Student, len(students))
	copy(sorted, students)

	less := lessFunc(sorted, field)
	if order == Desc {
		sort.SliceStable(sorted, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(sorted, less)
	}
	return sorted
}

// Search does a case-insensitive substring match on the names, email and course of students.
// Matches keep their table order.
func Search(students []Student, term string) []Student {
	term = strings.ToLower(term)
	results := make([]Student, 0)
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.FirstName), term) ||
			strings.Contains(strings.ToLower(s.LastName), term) ||
			strings.Contains(strings.ToLower(s.Email), term) ||
			strings.Contains(strings.ToLower(s.CourseID), term) {
			results = append(results, s)
		}
	}
	return results
}

// InCourse returns the students whose current course is courseID, in table order.
func InCourse(students []Student, courseID string) []Student {
	results := make([]Student, 0)
	for _, s := range students {
		if s.CourseID == courseID {
			results = append(results, s)
		}
	}
	return results
}

func (svc *Service) Sorted(field SortField, order Order) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return Sort(students, field, order), nil
}

func (svc *Service) Search(term string) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return Search(students, term), nil
}
