// Package flatfile stores every table as a comma-delimited file, one record per line.
package flatfile

import (
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/core/course"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/student"
)

type DB struct {
	dir       string
	student   *table[student.Key, student.Student]
	grade     *table[grade.Key, grade.Grade]
	course    *table[string, course.Course]
	professor *table[string, professor.Professor]
	account   *table[string, account.Account]
}

// Open checks that the data directory is usable (creating it if needed) and
// returns a handle on its tables. Files are only read when a table is used.
func Open(conf *core.Config, logger core.Logger) (*DB, error) {
	if err := checkDir(conf.DataDir); err != nil {
		return nil, err
	}
	db := &DB{
		dir:       conf.DataDir,
		student:   newTable(conf.Path(conf.Files.Student), studentCodec, logger),
		grade:     newTable(conf.Path(conf.Files.Grade), gradeCodec, logger),
		course:    newTable(conf.Path(conf.Files.Course), courseCodec, logger),
		professor: newTable(conf.Path(conf.Files.Professor), professorCodec, logger),
		account:   newTable(conf.Path(conf.Files.Account), accountCodec, logger),
	}
	return db, nil
}

func (db *DB) Dir() string { return db.dir }

// StudentFile returns the path of the Student table file.
func (db *DB) StudentFile() string { return db.student.path }

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating data directory %s", dir)
		}
	case err != nil:
		return errors.Wrapf(err, "checking data directory %s", dir)
	case !info.IsDir():
		return errors.Errorf("data directory %s is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return errors.Wrapf(err, "data directory %s is not writable", dir)
	}
	_ = probe.Close()
	return os.Remove(probe.Name())
}
