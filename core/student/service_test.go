package student_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/core/student"
	testutil "github.com/trezcool/checkmygrade/tests"
)

func TestNewStudent_Validate(t *testing.T) {
	valid := func() student.NewStudent {
		return student.NewStudent{
			FirstName: "Bob",
			LastName:  "Jones",
			Email:     "bob@uni.edu",
			CourseID:  "DATA200",
			Entry:     grading.Entry{Mark: "70"},
		}
	}
	tests := []struct {
		name    string
		modify  func(ns *student.NewStudent)
		wantErr error
	}{
		{name: "valid", modify: func(*student.NewStudent) {}},
		{name: "existing", modify: func(ns *student.NewStudent) { ns.FirstName, ns.LastName = "Alice", "Smith" }, wantErr: student.ErrExists},
		{name: "email taken", modify: func(ns *student.NewStudent) { ns.Email = "alice@uni.edu" }, wantErr: student.ErrEmailExists},
		{name: "unknown course", modify: func(ns *student.NewStudent) { ns.CourseID = "NOPE1" }, wantErr: student.ErrCourseNotFound},
		{name: "missing entry", modify: func(ns *student.NewStudent) { ns.Entry = grading.Entry{} }, wantErr: grading.ErrMissingEntry},
		{name: "comma in name", modify: func(ns *student.NewStudent) { ns.LastName = "Jones, Jr" }},
		{name: "blank course", modify: func(ns *student.NewStudent) { ns.CourseID = " " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testutil.NewApp(t)
			testutil.CreateCourse(t, app.DB, "DATA200", "Data Science")
			testutil.CreateStudent(t, app.DB, "Alice", "Smith", "alice@uni.edu", "DATA200", "A", "95")

			ns := valid()
			tt.modify(&ns)
			err := ns.Validate(app.Students)
			if tt.name == "valid" {
				require.NoError(t, err)
				s, err := app.Students.Create(ns)
				require.NoError(t, err)
				assert.Equal(t, "D", s.Grade)
				assert.Equal(t, "70", s.Mark)
				return
			}
			assert.True(t, core.IsValidation(err), "got %v", err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestService_Search(t *testing.T) {
	app, _ := testutil.NewApp(t)
	testutil.CreateStudent(t, app.DB, "Alice", "Smith", "alice@uni.edu", "DATA200", "A", "95")
	testutil.CreateStudent(t, app.DB, "Bob", "Jones", "bob@uni.edu", "CS101", "C", "80")

	found, err := app.Students.Search("BOB@")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Jones", found[0].LastName)

	found, err = app.Students.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, found)

	sorted, err := app.Students.Sorted(student.SortByMark, student.Desc)
	require.NoError(t, err)
	assert.Equal(t, "Alice", sorted[0].FirstName)
}
