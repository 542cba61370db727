package cli

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/gradebook"
	"github.com/trezcool/checkmygrade/core/grading"
	"github.com/trezcool/checkmygrade/core/student"
)

func (s *Session) askGradeKey() (grade.Key, error) {
	sk, err := s.askStudentKey("")
	if err != nil {
		return grade.Key{}, err
	}
	courseID, err := s.ask("Enter course ID")
	return grade.NewKey(sk, courseID), err
}

func (s *Session) addGrade() error {
	key, err := s.askGradeKey()
	if err != nil {
		return err
	}
	if err = s.app.Grades.CheckAbsent(key); err != nil {
		return err
	}

	var in gradebook.AddGradeInput
	if _, err = s.app.Students.Get(key.StudentKey()); errors.Is(err, student.ErrNotFound) {
		s.printf("\nStudent %s not found in the system.\n", key.StudentKey())
		create, err := s.confirm("Would you like to create the student record now?")
		if err != nil {
			return err
		}
		if !create {
			s.println("Grade addition cancelled. Please add the student record first.")
			return nil
		}
		s.println("\n--- Creating Student Record ---")
		if in.Email, err = s.ask("Email"); err != nil {
			return err
		}
		in.CreateStudent = true
	} else if err != nil {
		return err
	}

	if _, found, err := s.app.Resolver.ProfessorForCourse(key.CourseID); err != nil {
		return err
	} else if !found {
		s.printf("\nWarning: No professor is assigned to course %s.\n", key.CourseID)
		s.println("You may want to assign a professor to this course first.")
		cont, err := s.confirm("Do you want to continue adding the grade anyway?")
		if err != nil {
			return err
		}
		if !cont {
			s.println("Grade addition cancelled.")
			return nil
		}
		in.AllowUnassigned = true
	}

	entry, ok, err := s.askEntry()
	if err != nil || !ok {
		return err
	}
	in.Entry = entry

	res, err := s.app.Gradebook.AddGrade(key, in)
	if err != nil {
		return err
	}
	s.printf("Grade: %s, Mark: %s\n", res.Grade.Grade, res.Grade.Mark)
	if res.StudentCreated {
		s.printf("\nStudent record created for %s\n", key.StudentKey())
	}
	s.println("The new grade record has been added.")
	return nil
}

func (s *Session) modifyGrade() error {
	key, err := s.askGradeKey()
	if err != nil {
		return err
	}
	g, err := s.app.Grades.Get(key)
	if err != nil {
		return err
	}
	current, found, err := s.app.Resolver.ProfessorForCourse(key.CourseID)
	if err != nil {
		return err
	}
	if found {
		s.printf("\nCurrent Professor for %s: %s\n", key.CourseID, current.Name)
	} else {
		s.printf("\nNo professor currently assigned to %s\n", key.CourseID)
	}

	s.printf("\nCurrent Grade: %s, Current Mark: %s\n", g.Grade, g.Mark)
	s.println("\nWhat would you like to modify?")
	s.println("1. Grade only (mark will be updated automatically)")
	s.println("2. Mark only (grade will be updated automatically)")
	s.println("3. Professor only")
	s.println("4. Both grade/mark and professor")
	n, err := s.askNumber(4)
	if err != nil || n == 0 {
		return err
	}

	var in gradebook.ModifyGradeInput
	switch n {
	case 1:
		letter, err := s.askDefault("Grade (A/B/C/D/F)", g.Grade)
		if err != nil {
			return err
		}
		in.Entry = grading.Entry{Letter: letter}
	case 2:
		mark, err := s.askDefault("Mark (0-100)", g.Mark)
		if err != nil {
			return err
		}
		in.Entry = grading.Entry{Mark: mark}
	case 4:
		entry, ok, err := s.askEntry()
		if err != nil || !ok {
			return err
		}
		in.Entry = entry
	}
	if n >= 3 {
		if in.Professor, err = s.askProfessorChange(key.CourseID, current.Name, found); err != nil {
			return err
		}
		if in.Professor.Action == gradebook.ProfessorKeep && in.Entry.IsZero() {
			s.println("Modification cancelled.")
			return nil
		}
	}

	res, err := s.app.Gradebook.ModifyGrade(key, in)
	if err != nil {
		return err
	}
	s.println("\nGrade information modified successfully")
	s.printf("The new information for %s in course %s is:\n", key.StudentKey(), key.CourseID)
	s.printf("Grade: %s, Mark: %s\n", res.Grade.Grade, res.Grade.Mark)
	for _, prof := range res.Professors {
		if prof.CourseID == key.CourseID {
			s.printf("\n%s has been assigned to %s\n", prof.Name, key.CourseID)
		} else {
			s.printf("\n%s has been unassigned from %s\n", prof.Name, key.CourseID)
		}
	}
	return nil
}

func (s *Session) askProfessorChange(courseID, currentName string, found bool) (gradebook.ProfessorChange, error) {
	s.println("\nAvailable actions:")
	s.println("1. Assign a different professor")
	s.println("2. Remove professor assignment")
	n, err := s.askNumber(2)
	if err != nil || n == 0 {
		return gradebook.ProfessorChange{}, err
	}
	if n == 2 {
		return gradebook.ProfessorChange{Action: gradebook.ProfessorUnassign}, nil
	}

	profs, err := s.app.Professors.QueryAll()
	if err != nil {
		return gradebook.ProfessorChange{}, err
	}
	s.println("\nAvailable professors:")
	for _, p := range profs {
		s.printf("  - %s (Currently teaching: %s)\n", p.Name, p.CourseID)
	}
	change := gradebook.ProfessorChange{Action: gradebook.ProfessorAssign}
	if change.Name, err = s.ask("\nEnter the professor name to assign"); err != nil {
		return gradebook.ProfessorChange{}, err
	}
	if found && currentName != change.Name {
		if change.UnassignPrevious, err = s.confirm("Do you want to unassign " + currentName + " from " + courseID + "?"); err != nil {
			return gradebook.ProfessorChange{}, err
		}
	}
	return change, nil
}

func (s *Session) deleteGrade() error {
	key, err := s.askGradeKey()
	if err != nil {
		return err
	}
	if err = s.app.Gradebook.DeleteGrade(key); err != nil {
		return err
	}
	s.println("Student grade deleted successfully")
	return nil
}
