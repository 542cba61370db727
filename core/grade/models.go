package grade

import "github.com/trezcool/checkmygrade/core/student"

// Grade is the grade of a student in one course.
type Grade struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CourseID  string `json:"course_id"`
	Email     string `json:"email"`
	Grade     string `json:"grade"`
	Mark      string `json:"mark"`
}

// Key identifies a Grade.
type Key struct {
	FirstName string
	LastName  string
	CourseID  string
}

func NewKey(sk student.Key, courseID string) Key {
	return Key{FirstName: sk.FirstName, LastName: sk.LastName, CourseID: courseID}
}

func (k Key) StudentKey() student.Key {
	return student.Key{FirstName: k.FirstName, LastName: k.LastName}
}

func (k Key) String() string { return k.FirstName + " " + k.LastName + " in " + k.CourseID }

func (g Grade) Key() Key {
	return Key{FirstName: g.FirstName, LastName: g.LastName, CourseID: g.CourseID}
}

// SameResult reports whether g and s carry the same grade and mark.
func (g Grade) SameResult(s student.Student) bool {
	return g.Grade == s.Grade && g.Mark == s.Mark
}
