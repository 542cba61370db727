package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/core/course"
	"github.com/trezcool/checkmygrade/core/join"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/student"
)

var (
	Rule     = strings.Repeat("=", 80)
	Divider  = strings.Repeat("-", 80)
	noneText = "No students enrolled in this course."
)

func (r StudentReport) Render(w io.Writer) {
	st := r.Student
	fmt.Fprintf(w, "\n%s\nSTUDENT REPORT: %s\n%s\n", Rule, st.FullName(), Rule)
	fmt.Fprintf(w, "Email: %s\n", st.Email)
	fmt.Fprintf(w, "Course ID: %s\n", st.CourseID)
	fmt.Fprintf(w, "Grade: %s\n", st.Grade)
	fmt.Fprintf(w, "Mark: %s\n", st.Mark)
	fmt.Fprintln(w, Rule)
}

func (r GradeReport) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nGRADE REPORT\n%s\n", Rule, Rule)
	fmt.Fprintf(w, "Student: %s %s\n", r.FirstName, r.LastName)
	fmt.Fprintf(w, "Email: %s\n", r.Email)
	fmt.Fprintf(w, "Course: %s\n", r.CourseID)
	fmt.Fprintf(w, "Professor: %s\n", r.ProfessorName)
	if r.ProfessorEmail != join.NoEmail {
		fmt.Fprintf(w, "Professor Email: %s\n", r.ProfessorEmail)
	}
	fmt.Fprintf(w, "Grade: %s\n", r.Grade)
	fmt.Fprintf(w, "Mark: %s\n", r.Mark)
	fmt.Fprintln(w, Rule)
}

func renderEnrolled(w io.Writer, students []student.Student) {
	fmt.Fprintln(w, Divider)
	if len(students) == 0 {
		fmt.Fprintln(w, noneText)
		fmt.Fprintln(w, Divider)
		return
	}
	for _, st := range students {
		fmt.Fprintf(w, "Name: %s\n", st.FullName())
		fmt.Fprintf(w, "Email: %s\n", st.Email)
		fmt.Fprintf(w, "Grade: %s, Mark: %s\n", st.Grade, st.Mark)
		fmt.Fprintln(w, Divider)
	}
}

func (r CourseReport) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nCOURSE REPORT: %s\n%s\n", Rule, r.Course.ID, Rule)
	fmt.Fprintf(w, "Course Name: %s\n", r.Course.Name)
	fmt.Fprintf(w, "Credits: %s\n", r.Course.Credits)
	fmt.Fprintf(w, "Description: %s\n", r.Course.Description)
	fmt.Fprintf(w, "Professor: %s\n", r.Professor)
	fmt.Fprintln(w, "\nEnrolled Students:")
	renderEnrolled(w, r.Students)
	if len(r.Students) > 0 {
		fmt.Fprintf(w, "Total Students: %d\n", len(r.Students))
		fmt.Fprintf(w, "Average Mark: %.2f\n", r.Average.Value)
	}
	fmt.Fprintln(w, Rule)
}

func (r ProfessorReport) Render(w io.Writer) {
	p := r.Professor
	fmt.Fprintf(w, "\n%s\nPROFESSOR REPORT: %s\n%s\n", Rule, p.Name, Rule)
	fmt.Fprintf(w, "Email: %s\n", p.Email)
	fmt.Fprintf(w, "Rank: %s\n", p.Rank)
	fmt.Fprintf(w, "Course ID: %s\n", p.CourseID)
	fmt.Fprintln(w, "\nStudents in this course:")
	renderEnrolled(w, r.Students)
	fmt.Fprintln(w, Rule)
}

// One-line details.

func StudentDetails(st student.Student) string {
	return fmt.Sprintf(
		"First Name: %s, Last Name: %s, Email: %s, Course ID: %s, Grade: %s, Mark: %s",
		st.FirstName, st.LastName, st.Email, st.CourseID, st.Grade, st.Mark,
	)
}

func CourseDetails(c course.Course) string {
	return fmt.Sprintf(
		"Course ID: %s, Course Name: %s, Credits: %s, Description: %s",
		c.ID, c.Name, c.Credits, c.Description,
	)
}

func ProfessorDetails(p professor.Professor) string {
	return fmt.Sprintf(
		"Professor Name: %s, Email: %s, Rank: %s, Course ID: %s",
		p.Name, p.Email, p.Rank, p.CourseID,
	)
}

func AccountDetails(a account.Account) string {
	return fmt.Sprintf("Email: %s, Role: %s, Encrypted Password: %s", a.Email, a.Role, a.PasswordHash)
}
