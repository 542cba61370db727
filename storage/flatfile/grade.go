package flatfile

import (
	"github.com/trezcool/checkmygrade/core/grade"
)

// email, first_name, last_name, course_id, grade, mark
var gradeCodec = codec[grade.Key, grade.Grade]{
	name:   "grade",
	fields: 6,
	decode: func(f []string) grade.Grade {
		return grade.Grade{Email: f[0], FirstName: f[1], LastName: f[2], CourseID: f[3], Grade: f[4], Mark: f[5]}
	},
	encode: func(g grade.Grade) []string {
		return []string{g.Email, g.FirstName, g.LastName, g.CourseID, g.Grade, g.Mark}
	},
	key: grade.Grade.Key,
}

type gradeRepository struct {
	db *table[grade.Key, grade.Grade]
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) CreateGrade(g grade.Grade) (grade.Grade, error) {
	err := repo.db.update(func(rs *rows[grade.Key, grade.Grade]) error {
		if _, ok := rs.get(g.Key()); ok {
			return grade.ErrExists
		}
		rs.set(g.Key(), g)
		return nil
	})
	if err != nil {
		return grade.Grade{}, err
	}
	return g, nil
}

func (repo *gradeRepository) QueryAllGrades() ([]grade.Grade, error) {
	rs, err := repo.db.view()
	if err != nil {
		return nil, err
	}
	return rs.values(), nil
}

func (repo *gradeRepository) GetGrade(key grade.Key) (grade.Grade, error) {
	rs, err := repo.db.view()
	if err != nil {
		return grade.Grade{}, err
	}
	if g, ok := rs.get(key); ok {
		return g, nil
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) UpdateGrade(g grade.Grade) (grade.Grade, error) {
	err := repo.db.update(func(rs *rows[grade.Key, grade.Grade]) error {
		if _, ok := rs.get(g.Key()); !ok {
			return grade.ErrNotFound
		}
		rs.set(g.Key(), g)
		return nil
	})
	if err != nil {
		return grade.Grade{}, err
	}
	return g, nil
}

func (repo *gradeRepository) DeleteGrade(key grade.Key) error {
	return repo.db.update(func(rs *rows[grade.Key, grade.Grade]) error {
		if !rs.delete(key) {
			return grade.ErrNotFound
		}
		return nil
	})
}
