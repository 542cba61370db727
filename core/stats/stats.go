// Package stats computes the mark aggregates of a course.
package stats

import (
	"sort"

	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/core/student"
)

// Result of an aggregate over Count resolvable marks.
type Result struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// NoStudents reports the defined zero case: no resolvable mark in the course.
func (r Result) NoStudents() bool { return r.Count == 0 }

// CourseStudents lists the students currently in a course.
type CourseStudents interface {
	StudentsInCourse(courseID string) ([]student.Student, error)
}

type Engine struct {
	students CourseStudents
}

func NewEngine(students CourseStudents) *Engine {
	return &Engine{students: students}
}

// Marks returns the sortable marks of students. Unresolvable marks are skipped.
func Marks(students []student.Student) []float64 {
	marks := make([]float64, 0, len(students))
	for _, s := range students {
		if mark, err := grading.SortableMark(s.Mark); err == nil {
			marks = append(marks, mark)
		}
	}
	return marks
}

func MeanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func MedianOf(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func (e *Engine) marks(courseID string) ([]float64, error) {
	students, err := e.students.StudentsInCourse(courseID)
	if err != nil {
		return nil, err
	}
	return Marks(students), nil
}

func (e *Engine) Mean(courseID string) (Result, error) {
	marks, err := e.marks(courseID)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: MeanOf(marks), Count: len(marks)}, nil
}

func (e *Engine) Median(courseID string) (Result, error) {
	marks, err := e.marks(courseID)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: MedianOf(marks), Count: len(marks)}, nil
}
