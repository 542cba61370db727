package gradebook

import (
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/student"
)

// AddStudent creates a student and the grade of its current course.
// A Grade row left over for that course is overwritten with the new grade.
func (c *Coordinator) AddStudent(ns student.NewStudent) (Result, error) {
	if err := ns.Validate(c.students); err != nil {
		return Result{}, err
	}
	existing, found, err := c.grades.Find(grade.NewKey(ns.Key(), ns.CourseID))
	if err != nil {
		return Result{}, err
	}

	// writes
	st, err := c.students.Create(ns)
	if err != nil {
		return Result{}, err
	}
	res := Result{Student: st, StudentCreated: true}

	g := gradeOf(st)
	if found {
		existing.Email, existing.Grade, existing.Mark = g.Email, g.Grade, g.Mark
		res.Grade, err = c.grades.Save(existing)
	} else {
		res.Grade, err = c.grades.Create(g)
	}
	if err != nil {
		return res, c.partial(err, tableGrade, tableStudent)
	}
	return res, nil
}

// ModifyStudent updates a student. Moving to another course adopts the grade
// already recorded for that course, if any, unless a new entry is given; the
// Grade row of the previous course is kept. A new email is written to every
// Grade row of the student.
func (c *Coordinator) ModifyStudent(key student.Key, us student.UpdateStudent) (Result, error) {
	orig, err := c.students.Get(key)
	if err != nil {
		return Result{}, err
	}
	if err = us.Validate(orig, c.students); err != nil {
		return Result{}, err
	}
	st := c.students.Apply(orig, us)

	existing, found, err := c.grades.Find(grade.NewKey(st.Key(), st.CourseID))
	if err != nil {
		return Result{}, err
	}
	if found && us.CourseChanged(orig) && !us.HasEntry() {
		st.Grade, st.Mark = existing.Grade, existing.Mark
	}
	var others []grade.Grade
	if st.Email != orig.Email {
		if others, err = c.otherGrades(st); err != nil {
			return Result{}, err
		}
	}

	// writes
	res := Result{}
	g := gradeOf(st)
	switch {
	case !found:
		res.Grade, err = c.grades.Create(g)
	case existing.Email != g.Email || existing.Grade != g.Grade || existing.Mark != g.Mark:
		existing.Email, existing.Grade, existing.Mark = g.Email, g.Grade, g.Mark
		res.Grade, err = c.grades.Save(existing)
	default:
		res.Grade = existing
	}
	if err != nil {
		return Result{}, err
	}
	for _, og := range others {
		og.Email = st.Email
		if _, err = c.grades.Save(og); err != nil {
			return res, c.partial(err, tableGrade, tableGrade)
		}
	}

	if res.Student, err = c.students.Save(st); err != nil {
		return res, c.partial(err, tableStudent, tableGrade)
	}
	return res, nil
}

// otherGrades returns the Grade rows of st outside its current course.
func (c *Coordinator) otherGrades(st student.Student) ([]grade.Grade, error) {
	all, err := c.grades.QueryAll()
	if err != nil {
		return nil, err
	}
	others := make([]grade.Grade, 0)
	for _, g := range all {
		if g.Key().StudentKey() == st.Key() && g.CourseID != st.CourseID {
			others = append(others, g)
		}
	}
	return others, nil
}

// DeleteStudent removes the Student row only. Its Grade rows are kept.
func (c *Coordinator) DeleteStudent(key student.Key) error {
	return c.students.Delete(key)
}

// Reconcile copies the grade of each student's current course from the Grade
// table onto the Student row and returns the students that changed.
// Students without a Grade row for their current course are left as is.
// Nothing is written when dryRun is set.
func (c *Coordinator) Reconcile(dryRun bool) ([]student.Student, error) {
	students, err := c.students.QueryAll()
	if err != nil {
		return nil, err
	}
	grades, err := c.grades.QueryAll()
	if err != nil {
		return nil, err
	}
	byKey := make(map[grade.Key]grade.Grade, len(grades))
	for _, g := range grades {
		byKey[g.Key()] = g
	}

	changed := make([]student.Student, 0)
	for _, st := range students {
		g, ok := byKey[grade.NewKey(st.Key(), st.CourseID)]
		if !ok || g.SameResult(st) {
			continue
		}
		st.Grade, st.Mark = g.Grade, g.Mark
		changed = append(changed, st)
	}
	if dryRun || len(changed) == 0 {
		return changed, nil
	}
	if err = c.students.SaveAll(changed...); err != nil {
		return nil, err
	}
	c.logger.Info("student grades reconciled", map[string]interface{}{"count": len(changed)})
	return changed, nil
}

func gradeOf(st student.Student) grade.Grade {
	return grade.Grade{
		FirstName: st.FirstName,
		LastName:  st.LastName,
		CourseID:  st.CourseID,
		Email:     st.Email,
		Grade:     st.Grade,
		Mark:      st.Mark,
	}
}
