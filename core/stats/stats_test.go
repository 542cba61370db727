package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/core/student"
)

type courseStudents map[string][]student.Student

func (cs courseStudents) StudentsInCourse(courseID string) ([]student.Student, error) {
	return cs[courseID], nil
}

func withMarks(courseID string, marks ...string) []student.Student {
	students := make([]student.Student, 0, len(marks))
	for _, m := range marks {
		students = append(students, student.Student{CourseID: courseID, Mark: m})
	}
	return students
}

func TestMeanOf(t *testing.T) {
	assert.Equal(t, 85.0, MeanOf([]float64{90, 80, 85}))
	assert.Equal(t, 0.0, MeanOf(nil))
}

func TestMedianOf(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "odd", values: []float64{90, 70, 85}, want: 85},
		{name: "even", values: []float64{90, 70, 85, 60}, want: 77.5},
		{name: "single", values: []float64{42}, want: 42},
		{name: "empty", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MedianOf(tt.values))
		})
	}
}

func TestMedianOf_doesNotReorderInput(t *testing.T) {
	values := []float64{90, 70, 85}
	MedianOf(values)
	assert.Equal(t, []float64{90, 70, 85}, values)
}

func TestEngine(t *testing.T) {
	engine := NewEngine(courseStudents{
		"DATA200": withMarks("DATA200", "90", "80", "85"),
		"CS101":   withMarks("CS101", "90", "B", "n/a", "60"),
	})

	tests := []struct {
		name       string
		courseID   string
		wantMean   float64
		wantMedian float64
		wantCount  int
	}{
		{name: "numeric marks", courseID: "DATA200", wantMean: 85, wantMedian: 85, wantCount: 3},
		{name: "letter fallback and unresolvable skipped", courseID: "CS101", wantMean: 79.5, wantMedian: 88.5, wantCount: 3},
		{name: "no students", courseID: "EMPTY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, err := engine.Mean(tt.courseID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMean, mean.Value)
			assert.Equal(t, tt.wantCount, mean.Count)
			assert.Equal(t, tt.wantCount == 0, mean.NoStudents())

			median, err := engine.Median(tt.courseID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMedian, median.Value)
		})
	}
}
