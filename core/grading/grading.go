// Package grading converts between numeric marks and letter grades.
//
// The mapping is lossy: a letter grade maps back to a single representative
// mark, so GradeToMark(MarkToGrade(m)) is generally not m.
package grading

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
)

var (
	// errors
	ErrNotNumeric       = errors.New("mark must be a number")
	ErrOutOfRange       = errors.New("mark must be between 0 and 100")
	ErrInvalidGrade     = errors.New("grade must be A, B, C, D, or F")
	ErrUnresolvable     = errors.New("mark is neither a number nor a letter grade")
	ErrConflictingEntry = errors.New("enter either a mark or a letter grade, not both")
	ErrMissingEntry     = errors.New("a mark or a letter grade is required")
)

// Letters lists the valid grades, best first.
var Letters = []string{"A", "B", "C", "D", "F"}

var (
	thresholds = []struct {
		min    float64
		letter string
	}{
		{93, "A"},
		{85, "B"},
		{75, "C"},
		{60, "D"},
	}

	representativeMarks = map[string]float64{
		"A": 96.5,
		"B": 88.5,
		"C": 79.5,
		"D": 67.0,
		"F": 30.0,
	}
)

// MarkToGrade returns the letter grade for mark.
// A mark that is not numeric is returned unchanged.
func MarkToGrade(mark string) string {
	val, err := strconv.ParseFloat(strings.TrimSpace(mark), 64)
	if err != nil {
		return mark
	}
	return letterFor(val)
}

func letterFor(val float64) string {
	for _, th := range thresholds {
		if val >= th.min {
			return th.letter
		}
	}
	return "F"
}

// GradeToMark looks grade up (case-insensitively) in the representative marks table.
func GradeToMark(grade string) (float64, bool) {
	mark, ok := representativeMarks[strings.ToUpper(strings.TrimSpace(grade))]
	return mark, ok
}

// RepresentativeMark is GradeToMark in stored form ("96.5", "67.0").
// Unrecognized input is returned unchanged.
func RepresentativeMark(grade string) string {
	mark, ok := GradeToMark(grade)
	if !ok {
		return grade
	}
	return FormatMark(mark)
}

// FormatMark renders a mark the way marks are stored: shortest decimal form,
// always with a fractional part.
func FormatMark(mark float64) string {
	s := strconv.FormatFloat(mark, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// SortableMark coerces a stored mark to a number, falling back to the
// representative mark of a letter grade.
func SortableMark(mark string) (float64, error) {
	if val, err := strconv.ParseFloat(strings.TrimSpace(mark), 64); err == nil && !math.IsNaN(val) {
		return val, nil
	}
	if val, ok := GradeToMark(mark); ok {
		return val, nil
	}
	return 0, errors.Wrapf(ErrUnresolvable, "%q", mark)
}

// SortKey is SortableMark with unresolvable marks ordered first.
func SortKey(mark string) float64 {
	val, err := SortableMark(mark)
	if err != nil {
		return math.Inf(-1)
	}
	return val
}

// ParseMark validates a numeric mark entry. Only plain decimal notation is
// accepted: hex floats and digit separators are rejected.
func ParseMark(s string) (float64, error) {
	s = strings.TrimSpace(s)
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) || strings.ContainsAny(s, "xXpP_") {
		return 0, core.NewValidationError(ErrNotNumeric, core.FieldError{Field: "mark", Error: ErrNotNumeric.Error()})
	}
	if val < 0 || val > 100 {
		return 0, core.NewValidationError(ErrOutOfRange, core.FieldError{Field: "mark", Error: ErrOutOfRange.Error()})
	}
	return val, nil
}

// ParseLetter validates a letter grade entry and returns it upper-cased.
func ParseLetter(s string) (string, error) {
	letter := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := representativeMarks[letter]; !ok {
		return "", core.NewValidationError(ErrInvalidGrade, core.FieldError{Field: "grade", Error: ErrInvalidGrade.Error()})
	}
	return letter, nil
}

// Entry is a grade entered either as a numeric mark or as a letter grade.
type Entry struct {
	Mark   string `json:"mark,omitempty"`
	Letter string `json:"grade,omitempty"`
}

func (e Entry) IsZero() bool {
	return strings.TrimSpace(e.Mark) == "" && strings.TrimSpace(e.Letter) == ""
}

// Resolve validates the entry and returns the (grade, mark) pair to store.
// A numeric mark is stored as entered with its derived grade; a letter grade
// is stored with its representative mark.
func (e Entry) Resolve() (grade, mark string, err error) {
	hasMark := strings.TrimSpace(e.Mark) != ""
	hasLetter := strings.TrimSpace(e.Letter) != ""
	switch {
	case hasMark && hasLetter:
		return "", "", core.NewValidationError(ErrConflictingEntry, core.FieldError{Field: "grade", Error: ErrConflictingEntry.Error()})
	case hasMark:
		if _, err := ParseMark(e.Mark); err != nil {
			return "", "", err
		}
		mark = strings.TrimSpace(e.Mark)
		return MarkToGrade(mark), mark, nil
	case hasLetter:
		letter, err := ParseLetter(e.Letter)
		if err != nil {
			return "", "", err
		}
		return letter, RepresentativeMark(letter), nil
	default:
		return "", "", core.NewValidationError(ErrMissingEntry, core.FieldError{Field: "grade", Error: ErrMissingEntry.Error()})
	}
}
