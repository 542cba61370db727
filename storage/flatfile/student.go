package flatfile

import (
	"github.com/trezcool/checkmygrade/core/student"
)

// email, first_name, last_name, course_id, grade, mark
var studentCodec = codec[student.Key, student.Student]{
	name:   "student",
	fields: 6,
	decode: func(f []string) student.Student {
		return student.Student{Email: f[0], FirstName: f[1], LastName: f[2], CourseID: f[3], Grade: f[4], Mark: f[5]}
	},
	encode: func(s student.Student) []string {
		return []string{s.Email, s.FirstName, s.LastName, s.CourseID, s.Grade, s.Mark}
	},
	key: student.Student.Key,
}

type studentRepository struct {
	db *table[student.Key, student.Student]
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) CheckEmailUniqueness(email string, excludedKeys ...student.Key) error {
	rs, err := repo.db.view()
	if err != nil {
		return err
	}
	for _, s := range rs.values() {
		if s.Email == email && !isExcludedStudent(s.Key(), excludedKeys) {
			return student.ErrEmailExists
		}
	}
	return nil
}

func isExcludedStudent(key student.Key, excludedKeys []student.Key) bool {
	for _, k := range excludedKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	err := repo.db.update(func(rs *rows[student.Key, student.Student]) error {
		if _, ok := rs.get(s.Key()); ok {
			return student.ErrExists
		}
		rs.set(s.Key(), s)
		return nil
	})
	if err != nil {
		return student.Student{}, err
	}
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	rs, err := repo.db.view()
	if err != nil {
		return nil, err
	}
	return rs.values(), nil
}

func (repo *studentRepository) GetStudent(key student.Key) (student.Student, error) {
	rs, err := repo.db.view()
	if err != nil {
		return student.Student{}, err
	}
	if s, ok := rs.get(key); ok {
		return s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	err := repo.db.update(func(rs *rows[student.Key, student.Student]) error {
		if _, ok := rs.get(s.Key()); !ok {
			return student.ErrNotFound
		}
		rs.set(s.Key(), s)
		return nil
	})
	if err != nil {
		return student.Student{}, err
	}
	return s, nil
}

func (repo *studentRepository) UpdateStudents(students ...student.Student) error {
	return repo.db.update(func(rs *rows[student.Key, student.Student]) error {
		for _, s := range students {
			if _, ok := rs.get(s.Key()); !ok {
				return student.ErrNotFound
			}
			rs.set(s.Key(), s)
		}
		return nil
	})
}

func (repo *studentRepository) DeleteStudent(key student.Key) error {
	return repo.db.update(func(rs *rows[student.Key, student.Student]) error {
		if !rs.delete(key) {
			return student.ErrNotFound
		}
		return nil
	})
}
