package flatfile

import (
	"github.com/trezcool/checkmygrade/core/professor"
)

// email, professor_name, rank, course_id
var professorCodec = codec[string, professor.Professor]{
	name:   "professor",
	fields: 4,
	decode: func(f []string) professor.Professor {
		return professor.Professor{Email: f[0], Name: f[1], Rank: f[2], CourseID: f[3]}
	},
	encode: func(p professor.Professor) []string {
		return []string{p.Email, p.Name, p.Rank, p.CourseID}
	},
	key: func(p professor.Professor) string { return p.Name },
}

type professorRepository struct {
	db *table[string, professor.Professor]
}

var _ professor.Repository = (*professorRepository)(nil) // interface compliance check

func NewProfessorRepository(db *DB) professor.Repository {
	return &professorRepository{db: db.professor}
}

func (repo *professorRepository) CheckEmailUniqueness(email string, excludedNames ...string) error {
	rs, err := repo.db.view()
	if err != nil {
		return err
	}
	for _, p := range rs.values() {
		if p.Email == email && !isExcludedName(p.Name, excludedNames) {
			return professor.ErrEmailExists
		}
	}
	return nil
}

func isExcludedName(name string, excludedNames []string) bool {
	for _, n := range excludedNames {
		if n == name {
			return true
		}
	}
	return false
}

func (repo *professorRepository) CreateProfessor(p professor.Professor) (professor.Professor, error) {
	err := repo.db.update(func(rs *rows[string, professor.Professor]) error {
		if _, ok := rs.get(p.Name); ok {
			return professor.ErrExists
		}
		rs.set(p.Name, p)
		return nil
	})
	if err != nil {
		return professor.Professor{}, err
	}
	return p, nil
}

func (repo *professorRepository) QueryAllProfessors() ([]professor.Professor, error) {
	rs, err := repo.db.view()
	if err != nil {
		return nil, err
	}
	return rs.values(), nil
}

func (repo *professorRepository) GetProfessor(name string) (professor.Professor, error) {
	rs, err := repo.db.view()
	if err != nil {
		return professor.Professor{}, err
	}
	if p, ok := rs.get(name); ok {
		return p, nil
	}
	return professor.Professor{}, professor.ErrNotFound
}

func (repo *professorRepository) UpdateProfessors(profs ...professor.Professor) error {
	return repo.db.update(func(rs *rows[string, professor.Professor]) error {
		for _, p := range profs {
			if _, ok := rs.get(p.Name); !ok {
				return professor.ErrNotFound
			}
			rs.set(p.Name, p)
		}
		return nil
	})
}

func (repo *professorRepository) DeleteProfessor(name string) error {
	return repo.db.update(func(rs *rows[string, professor.Professor]) error {
		if !rs.delete(name) {
			return professor.ErrNotFound
		}
		return nil
	})
}
