package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/student"
)

type students []student.Student

func (s students) QueryAll() ([]student.Student, error) { return s, nil }

type professors []professor.Professor

func (p professors) QueryAll() ([]professor.Professor, error) { return p, nil }

func (p professors) Get(name string) (professor.Professor, error) {
	for _, prof := range p {
		if prof.Name == name {
			return prof, nil
		}
	}
	return professor.Professor{}, professor.ErrNotFound
}

func newTestResolver() *ScanResolver {
	return NewScanResolver(
		students{
			{FirstName: "Alice", LastName: "Smith", Email: "alice@uni.edu", CourseID: "DATA200"},
			{FirstName: "Bob", LastName: "Jones", Email: "bob@uni.edu", CourseID: "CS101"},
			{FirstName: "Carol", LastName: "King", Email: "carol@uni.edu", CourseID: "DATA200"},
		},
		professors{
			{Name: "Dr Lee", Email: "lee@uni.edu", CourseID: ""},
			{Name: "Dr Smith", Email: "smith@uni.edu", CourseID: "DATA200"},
			{Name: "Dr Adams", Email: "adams@uni.edu", CourseID: "DATA200"},
		},
	)
}

func TestScanResolver_ProfessorForCourse(t *testing.T) {
	r := newTestResolver()
	tests := []struct {
		name      string
		courseID  string
		wantName  string
		wantFound bool
	}{
		{name: "first match wins", courseID: "DATA200", wantName: "Dr Smith", wantFound: true},
		{name: "no professor", courseID: "CS101"},
		{name: "unknown course", courseID: "XX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, found, err := r.ProfessorForCourse(tt.courseID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantName, p.Name)

			name, email := ProfessorLabel(p, found)
			if !tt.wantFound {
				assert.Equal(t, NotAssigned, name)
				assert.Equal(t, NoEmail, email)
			}
		})
	}
}

func TestScanResolver_StudentsOfProfessor(t *testing.T) {
	r := newTestResolver()

	prof, got, err := r.StudentsOfProfessor("Dr Smith")
	require.NoError(t, err)
	assert.Equal(t, "DATA200", prof.CourseID)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].FirstName)
	assert.Equal(t, "Carol", got[1].FirstName)

	_, got, err = r.StudentsOfProfessor("Dr Lee")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, _, err = r.StudentsOfProfessor("Dr Who")
	assert.Equal(t, professor.ErrNotFound, err)
}

func TestScanResolver_StudentsInCourse(t *testing.T) {
	r := newTestResolver()

	got, err := r.StudentsInCourse("CS101")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob@uni.edu", got[0].Email)

	got, err = r.StudentsInCourse("NONE")
	require.NoError(t, err)
	assert.Empty(t, got)
}
