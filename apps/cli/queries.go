package cli

import (
	"time"

	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/core/authz"
	"github.com/trezcool/checkmygrade/core/report"
	"github.com/trezcool/checkmygrade/core/stats"
	"github.com/trezcool/checkmygrade/core/student"
	"github.com/trezcool/checkmygrade/services/metrics"
)

// Statistics

func (s *Session) meanGrade() error {
	return s.statistic("Average", s.app.Stats.Mean)
}

func (s *Session) medianGrade() error {
	return s.statistic("Median", s.app.Stats.Median)
}

func (s *Session) statistic(name string, compute func(courseID string) (stats.Result, error)) error {
	courseID, err := s.ask("Enter course ID")
	if err != nil {
		return err
	}
	res, err := compute(courseID)
	if err != nil {
		return err
	}
	if res.NoStudents() {
		s.println("No students found for this course.")
	}
	s.printf("%s grade for %s: %.2f\n", name, courseID, res.Value)
	return nil
}

// Search & sort

func (s *Session) searchStudents() error {
	term, err := s.ask("Enter search term (name, email, or course ID)")
	if err != nil {
		return err
	}

	start := time.Now()
	found, err := s.app.Students.Search(term)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	metrics.ObserveQuery("search", elapsed)

	if len(found) == 0 {
		s.printf("No students found matching '%s'\n", term)
	} else {
		s.printf("\nFound %d student(s) matching '%s':\n", len(found), term)
		s.println(report.Divider)
		for _, st := range found {
			s.printf("Name: %s\n", st.FullName())
			s.printf("Email: %s\n", st.Email)
			s.printf("Course: %s\n", st.CourseID)
			s.printf("Grade: %s, Mark: %s\n", st.Grade, st.Mark)
			s.println(report.Divider)
		}
	}
	s.printf("\nSearch completed in %.6f seconds\n", elapsed.Seconds())
	s.printf("Total records: %d\n", len(found))
	return nil
}

func (s *Session) sortByName() error {
	return s.sortStudents(student.SortByName, func(st student.Student) {
		s.printf("%s, %s | Email: %s | Course: %s | Grade: %s | Mark: %s\n",
			st.LastName, st.FirstName, st.Email, st.CourseID, st.Grade, st.Mark)
	})
}

func (s *Session) sortByMark() error {
	return s.sortStudents(student.SortByMark, func(st student.Student) {
		s.printf("Mark: %s | Grade: %s | %s | Email: %s | Course: %s\n",
			st.Mark, st.Grade, st.FullName(), st.Email, st.CourseID)
	})
}

func (s *Session) sortByEmail() error {
	return s.sortStudents(student.SortByEmail, func(st student.Student) {
		s.printf("Email: %s | %s | Course: %s | Grade: %s | Mark: %s\n",
			st.Email, st.FullName(), st.CourseID, st.Grade, st.Mark)
	})
}

var sortTitles = map[student.SortField]string{
	student.SortByName:  "name",
	student.SortByMark:  "marks",
	student.SortByEmail: "email",
}

func (s *Session) sortStudents(field student.SortField, printRow func(student.Student)) error {
	o, err := s.choose("Enter sort order", string(student.Asc), string(student.Desc))
	if err != nil {
		return err
	}
	order := student.Order(o)

	start := time.Now()
	sorted, err := s.app.Students.Sorted(field, order)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	metrics.ObserveQuery("sort_"+string(field), elapsed)

	s.printf("\nStudents sorted by %s (%sending order):\n", sortTitles[field], order)
	s.println(report.Divider)
	for _, st := range sorted {
		printRow(st)
	}
	s.println(report.Divider)
	s.printf("Sort completed in %.6f seconds\n", elapsed.Seconds())
	s.printf("Total records: %d\n", len(sorted))
	return nil
}

// Reports

func (s *Session) courseReport() error {
	courseID, err := s.ask("Enter course ID")
	if err != nil {
		return err
	}
	r, err := s.app.Reports.Course(courseID)
	if err != nil {
		return err
	}
	r.Render(s.out)
	return nil
}

func (s *Session) professorReport() error {
	name, err := s.ask("Enter professor name")
	if err != nil {
		return err
	}
	r, err := s.app.Reports.Professor(name)
	if err != nil {
		return err
	}
	r.Render(s.out)
	return nil
}

func (s *Session) studentReport() error {
	key, err := s.askStudentKey("")
	if err != nil {
		return err
	}
	r, err := s.app.Reports.Student(key)
	if err != nil {
		return err
	}
	r.Render(s.out)
	return nil
}

// Student self-service

// ownStudent returns the student named by the user when it is the logged in account's record.
func (s *Session) ownStudent() (student.Student, error) {
	first, err := s.ask("Enter your first name")
	if err != nil {
		return student.Student{}, err
	}
	last, err := s.ask("Enter your last name")
	if err != nil {
		return student.Student{}, err
	}
	st, err := s.app.Students.Get(student.Key{FirstName: first, LastName: last})
	if err != nil {
		return student.Student{}, err
	}
	if st.Email != s.acc.Email {
		return student.Student{}, authz.ErrForbidden
	}
	return st, nil
}

func (s *Session) ownDetails() error {
	st, err := s.ownStudent()
	if err != nil {
		return err
	}
	s.println(report.StudentDetails(st))
	return nil
}

func (s *Session) ownReport() error {
	st, err := s.ownStudent()
	if err != nil {
		return err
	}
	report.StudentReport{Student: st}.Render(s.out)
	return nil
}

func (s *Session) changePassword() error {
	old, err := s.in.PasswordPrompt("Enter old password: ")
	if err != nil {
		return err
	}
	pwd, err := s.in.PasswordPrompt("Enter new password: ")
	if err != nil {
		return err
	}
	err = s.app.Accounts.ChangePassword(account.ChangePassword{
		Email:       s.acc.Email,
		OldPassword: old,
		NewPassword: pwd,
	})
	if err != nil {
		return err
	}
	s.println("Password changed successfully")
	return nil
}
