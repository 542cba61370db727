package gradebook_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/core/student"
	testutil "github.com/trezcool/checkmygrade/tests"
)

func TestCoordinator_AddStudent(t *testing.T) {
	app, alice := setup(t)

	res, err := app.Gradebook.AddStudent(student.NewStudent{
		FirstName: " Bob ",
		LastName:  "Jones",
		Email:     "bob@uni.edu",
		CourseID:  "DATA200",
		Entry:     grading.Entry{Mark: "88"},
	})
	require.NoError(t, err)
	assert.True(t, res.StudentCreated)
	assert.Equal(t, "Bob", res.Student.FirstName)
	assert.Equal(t, "B", res.Student.Grade)

	g, err := app.Grades.Get(grade.Key{FirstName: "Bob", LastName: "Jones", CourseID: "DATA200"})
	require.NoError(t, err)
	assert.True(t, g.SameResult(res.Student))

	_, err = app.Gradebook.AddStudent(student.NewStudent{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "other@uni.edu",
		CourseID:  "DATA200",
		Entry:     grading.Entry{Mark: "88"},
	})
	assert.True(t, errors.Is(err, student.ErrExists))
	assert.True(t, core.IsValidation(err))

	got, err := app.Students.Get(alice.Key())
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestCoordinator_AddStudent_overwritesLeftoverGrade(t *testing.T) {
	app, _ := setup(t)
	ghost := student.Student{FirstName: "Carl", LastName: "Ng", Email: "old@uni.edu"}
	testutil.CreateGrade(t, app.DB, ghost, "DATA200", "F", "20")

	_, err := app.Gradebook.AddStudent(student.NewStudent{
		FirstName: "Carl",
		LastName:  "Ng",
		Email:     "carl@uni.edu",
		CourseID:  "DATA200",
		Entry:     grading.Entry{Letter: "A"},
	})
	require.NoError(t, err)

	grades, err := app.Grades.QueryAll()
	require.NoError(t, err)
	var carl []grade.Grade
	for _, g := range grades {
		if g.FirstName == "Carl" {
			carl = append(carl, g)
		}
	}
	require.Len(t, carl, 1)
	assert.Equal(t, "carl@uni.edu", carl[0].Email)
	assert.Equal(t, "A", carl[0].Grade)
	assert.Equal(t, "96.5", carl[0].Mark)
}

func TestCoordinator_ModifyStudent(t *testing.T) {
	tests := []struct {
		name      string
		update    student.UpdateStudent
		wantGrade string
		wantMark  string
		wantErr   error
	}{
		{
			name:      "new mark",
			update:    student.UpdateStudent{Entry: grading.Entry{Mark: "61"}},
			wantGrade: "D",
			wantMark:  "61",
		},
		{
			name:      "course change adopts recorded grade",
			update:    student.UpdateStudent{CourseID: "CS101"},
			wantGrade: "C",
			wantMark:  "77",
		},
		{
			name:      "course change with new entry",
			update:    student.UpdateStudent{CourseID: "CS101", Entry: grading.Entry{Letter: "b"}},
			wantGrade: "B",
			wantMark:  "88.5",
		},
		{
			name:    "unknown course",
			update:  student.UpdateStudent{CourseID: "NOPE1"},
			wantErr: student.ErrCourseNotFound,
		},
		{
			name:    "taken email",
			update:  student.UpdateStudent{Email: "bob@uni.edu"},
			wantErr: student.ErrEmailExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, alice := setup(t)
			testutil.CreateGrade(t, app.DB, alice, "CS101", "C", "77")
			testutil.CreateEnrolled(t, app.DB, "Bob", "Jones", "bob@uni.edu", "CS101", "A", "99")

			res, err := app.Gradebook.ModifyStudent(alice.Key(), tt.update)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantGrade, res.Student.Grade)
			assert.Equal(t, tt.wantMark, res.Student.Mark)
			assert.True(t, res.Grade.SameResult(res.Student))

			// grade of the previous course is kept
			prev, err := app.Grades.Get(grade.NewKey(alice.Key(), "DATA200"))
			require.NoError(t, err)
			if res.Student.CourseID != "DATA200" {
				assert.Equal(t, "95", prev.Mark)
			}
		})
	}
}

func TestCoordinator_ModifyStudent_createsMissingGrade(t *testing.T) {
	app, _ := setup(t)
	dan := testutil.CreateStudent(t, app.DB, "Dan", "Ray", "dan@uni.edu", "DATA200", "C", "80")

	res, err := app.Gradebook.ModifyStudent(dan.Key(), student.UpdateStudent{Email: "dan.ray@uni.edu"})
	require.NoError(t, err)

	g, err := app.Grades.Get(grade.NewKey(dan.Key(), "DATA200"))
	require.NoError(t, err)
	assert.Equal(t, res.Grade, g)
	assert.Equal(t, "dan.ray@uni.edu", g.Email)
	assert.Equal(t, "80", g.Mark)
}

func TestCoordinator_ModifyStudent_emailOnEveryGrade(t *testing.T) {
	app, alice := setup(t)
	testutil.CreateGrade(t, app.DB, alice, "CS101", "B", "88")
	bob := testutil.CreateEnrolled(t, app.DB, "Bob", "Jones", "bob@uni.edu", "CS101", "C", "80")

	res, err := app.Gradebook.ModifyStudent(alice.Key(), student.UpdateStudent{Email: "alice@new.edu"})
	require.NoError(t, err)
	assert.Equal(t, "alice@new.edu", res.Student.Email)

	for _, courseID := range []string{"DATA200", "CS101"} {
		g, err := app.Grades.Get(grade.NewKey(alice.Key(), courseID))
		require.NoError(t, err)
		assert.Equal(t, "alice@new.edu", g.Email, courseID)
	}
	old, err := app.Grades.Get(grade.NewKey(alice.Key(), "CS101"))
	require.NoError(t, err)
	assert.Equal(t, "B", old.Grade)
	assert.Equal(t, "88", old.Mark)

	other, err := app.Grades.Get(grade.NewKey(bob.Key(), "CS101"))
	require.NoError(t, err)
	assert.Equal(t, "bob@uni.edu", other.Email)
}

func TestCoordinator_DeleteStudent(t *testing.T) {
	app, alice := setup(t)

	require.NoError(t, app.Gradebook.DeleteStudent(alice.Key()))
	_, err := app.Students.Get(alice.Key())
	assert.True(t, errors.Is(err, student.ErrNotFound))

	_, err = app.Grades.Get(grade.NewKey(alice.Key(), "DATA200"))
	assert.NoError(t, err)
}

func TestCoordinator_Reconcile(t *testing.T) {
	app, alice := setup(t)
	stale := testutil.CreateStudent(t, app.DB, "Eve", "Moss", "eve@uni.edu", "DATA200", "F", "10")
	testutil.CreateGrade(t, app.DB, stale, "DATA200", "B", "90")
	testutil.CreateStudent(t, app.DB, "Finn", "Hale", "finn@uni.edu", "DATA200", "C", "80")

	changed, err := app.Gradebook.Reconcile(true)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, "Eve", changed[0].FirstName)
	assert.Equal(t, "90", changed[0].Mark)

	got, err := app.Students.Get(stale.Key())
	require.NoError(t, err)
	assert.Equal(t, "10", got.Mark, "dry run writes nothing")

	changed, err = app.Gradebook.Reconcile(false)
	require.NoError(t, err)
	assert.Len(t, changed, 1)

	got, err = app.Students.Get(stale.Key())
	require.NoError(t, err)
	assert.Equal(t, "B", got.Grade)
	assert.Equal(t, "90", got.Mark)

	unchanged, err := app.Students.Get(alice.Key())
	require.NoError(t, err)
	assert.Equal(t, alice, unchanged)

	changed, err = app.Gradebook.Reconcile(false)
	require.NoError(t, err)
	assert.Empty(t, changed)
}
