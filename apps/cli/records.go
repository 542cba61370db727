package cli

import (
	"github.com/trezcool/checkmygrade/core/course"
	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/report"
	"github.com/trezcool/checkmygrade/core/student"
)

func (s *Session) askStudentKey(suffix string) (student.Key, error) {
	first, err := s.ask("Enter student first name" + suffix)
	if err != nil {
		return student.Key{}, err
	}
	last, err := s.ask("Enter student last name" + suffix)
	return student.Key{FirstName: first, LastName: last}, err
}

// Students

func (s *Session) addStudent() error {
	s.println("Please provide the following details to add a new student:")
	var ns student.NewStudent
	var err error
	if ns.FirstName, err = s.ask("First Name"); err != nil {
		return err
	}
	if ns.LastName, err = s.ask("Last Name"); err != nil {
		return err
	}
	if ns.Email, err = s.ask("Email"); err != nil {
		return err
	}
	if ns.CourseID, err = s.ask("Course ID"); err != nil {
		return err
	}
	entry, ok, err := s.askEntry()
	if err != nil || !ok {
		return err
	}
	ns.Entry = entry

	res, err := s.app.Gradebook.AddStudent(ns)
	if err != nil {
		return err
	}
	s.printf("Grade: %s, Mark: %s\n", res.Student.Grade, res.Student.Mark)
	s.println("The new student record has been added.")
	return nil
}

func (s *Session) modifyStudent() error {
	key, err := s.askStudentKey("")
	if err != nil {
		return err
	}
	if _, err = s.app.Students.Get(key); err != nil {
		return err
	}

	s.println("Please choose which details to modify.")
	s.println("1. Email")
	s.println("2. Course ID")
	s.println("3. Grade (mark will be updated automatically)")
	s.println("4. Mark (grade will be updated automatically)")
	n, err := s.askNumber(4)
	if err != nil || n == 0 {
		return err
	}

	var us student.UpdateStudent
	switch n {
	case 1:
		us.Email, err = s.ask("Please enter new Email")
	case 2:
		us.CourseID, err = s.ask("Please enter new Course ID")
	case 3:
		var letter string
		letter, err = s.ask("Please enter new Grade (A/B/C/D/F)")
		us.Entry = grading.Entry{Letter: letter}
	case 4:
		var mark string
		mark, err = s.ask("Please enter new Mark (0-100)")
		us.Entry = grading.Entry{Mark: mark}
	}
	if err != nil {
		return err
	}

	res, err := s.app.Gradebook.ModifyStudent(key, us)
	if err != nil {
		return err
	}
	s.println("Student information modified successfully")
	s.printf("The new information for %s is:\n", key)
	s.println(report.StudentDetails(res.Student))
	return nil
}

func (s *Session) deleteStudent() error {
	key, err := s.askStudentKey(" to delete")
	if err != nil {
		return err
	}
	if err = s.app.Gradebook.DeleteStudent(key); err != nil {
		return err
	}
	s.println("Student deleted successfully")
	return nil
}

// Professors

func (s *Session) addProfessor() error {
	s.println("Please provide the following details to add a new professor:")
	var np professor.NewProfessor
	var err error
	if np.Name, err = s.ask("Professor Name"); err != nil {
		return err
	}
	if np.Email, err = s.ask("Email"); err != nil {
		return err
	}
	if np.Rank, err = s.ask("Rank"); err != nil {
		return err
	}
	if np.CourseID, err = s.ask("Course ID (empty if none)"); err != nil {
		return err
	}
	if _, err = s.app.Professors.Create(np); err != nil {
		return err
	}
	s.println("The new professor record has been added.")
	return nil
}

func (s *Session) modifyProfessor() error {
	name, err := s.ask("Enter professor name to modify")
	if err != nil {
		return err
	}
	if _, err = s.app.Professors.Get(name); err != nil {
		return err
	}

	s.println("Please choose which details to modify.")
	s.println("1. Email")
	s.println("2. Rank")
	s.println("3. Course ID")
	n, err := s.askNumber(3)
	if err != nil || n == 0 {
		return err
	}
	var up professor.UpdateProfessor
	switch n {
	case 1:
		up.Email, err = s.ask("Please enter new Email")
	case 2:
		up.Rank, err = s.ask("Please enter new Rank")
	case 3:
		up.CourseID, err = s.ask("Please enter new Course ID")
	}
	if err != nil {
		return err
	}

	prof, err := s.app.Professors.Update(name, up)
	if err != nil {
		return err
	}
	s.println("Professor information modified successfully")
	s.printf("The updated information for %s is:\n", prof.Name)
	s.println(report.ProfessorDetails(prof))
	return nil
}

func (s *Session) deleteProfessor() error {
	name, err := s.ask("Enter professor name to delete")
	if err != nil {
		return err
	}
	if err = s.app.Professors.Delete(name); err != nil {
		return err
	}
	s.println("Professor deleted successfully")
	return nil
}

// Courses

func (s *Session) addCourse() error {
	s.println("Please provide the following details to add a new course:")
	var nc course.NewCourse
	var err error
	if nc.ID, err = s.ask("Course ID"); err != nil {
		return err
	}
	if nc.Name, err = s.ask("Course Name"); err != nil {
		return err
	}
	if nc.Credits, err = s.ask("Credits"); err != nil {
		return err
	}
	if nc.Description, err = s.ask("Description"); err != nil {
		return err
	}
	if _, err = s.app.Courses.Create(nc); err != nil {
		return err
	}
	s.println("The new course record has been added.")
	return nil
}

func (s *Session) modifyCourse() error {
	s.println("Please provide the following details to modify a course:")
	id, err := s.ask("Course ID")
	if err != nil {
		return err
	}
	orig, err := s.app.Courses.Get(id)
	if err != nil {
		return err
	}

	var uc course.UpdateCourse
	if uc.Name, err = s.askDefault("Course Name", orig.Name); err != nil {
		return err
	}
	if uc.Credits, err = s.askDefault("Credits", orig.Credits); err != nil {
		return err
	}
	if uc.Description, err = s.askDefault("Description", orig.Description); err != nil {
		return err
	}
	if _, err = s.app.Courses.Update(id, uc); err != nil {
		return err
	}
	s.println("Course information modified successfully.")
	return nil
}

func (s *Session) deleteCourse() error {
	id, err := s.ask("Enter course ID to delete")
	if err != nil {
		return err
	}
	if err = s.app.Courses.Delete(id); err != nil {
		return err
	}
	s.println("Course deleted successfully")
	return nil
}
