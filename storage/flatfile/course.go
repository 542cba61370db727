package flatfile

import (
	"github.com/trezcool/checkmygrade/core/course"
)

// course_id, course_name, credits, description
var courseCodec = codec[string, course.Course]{
	name:   "course",
	fields: 4,
	decode: func(f []string) course.Course {
		return course.Course{ID: f[0], Name: f[1], Credits: f[2], Description: f[3]}
	},
	encode: func(c course.Course) []string {
		return []string{c.ID, c.Name, c.Credits, c.Description}
	},
	key: func(c course.Course) string { return c.ID },
}

type courseRepository struct {
	db *table[string, course.Course]
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	err := repo.db.update(func(rs *rows[string, course.Course]) error {
		if _, ok := rs.get(c.ID); ok {
			return course.ErrExists
		}
		rs.set(c.ID, c)
		return nil
	})
	if err != nil {
		return course.Course{}, err
	}
	return c, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	rs, err := repo.db.view()
	if err != nil {
		return nil, err
	}
	return rs.values(), nil
}

func (repo *courseRepository) GetCourse(id string) (course.Course, error) {
	rs, err := repo.db.view()
	if err != nil {
		return course.Course{}, err
	}
	if c, ok := rs.get(id); ok {
		return c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateCourse(c course.Course) (course.Course, error) {
	err := repo.db.update(func(rs *rows[string, course.Course]) error {
		if _, ok := rs.get(c.ID); !ok {
			return course.ErrNotFound
		}
		rs.set(c.ID, c)
		return nil
	})
	if err != nil {
		return course.Course{}, err
	}
	return c, nil
}

func (repo *courseRepository) DeleteCourse(id string) error {
	return repo.db.update(func(rs *rows[string, course.Course]) error {
		if !rs.delete(id) {
			return course.ErrNotFound
		}
		return nil
	})
}
