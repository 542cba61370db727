package apps

import (
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
	"github.com/trezcool/checkmygrade/core/authz"
	"github.com/trezcool/checkmygrade/core/course"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/gradebook"
	"github.com/trezcool/checkmygrade/core/join"
	"github.com/trezcool/checkmygrade/core/professor"
	"github.com/trezcool/checkmygrade/core/report"
	"github.com/trezcool/checkmygrade/core/stats"
	"github.com/trezcool/checkmygrade/core/student"
	"github.com/trezcool/checkmygrade/storage/flatfile"
)

// App holds the services shared by the menu, the API and the admin commands.
type App struct {
	Conf   *core.Config
	Logger core.Logger
	DB     *flatfile.DB

	Courses    *course.Service
	Students   *student.Service
	Grades     *grade.Service
	Professors *professor.Service
	Accounts   *account.Service

	Resolver  join.Resolver
	Stats     *stats.Engine
	Gradebook *gradebook.Coordinator
	Reports   *report.Service
	Enforcer  *authz.Enforcer
}

// New opens the data directory and wires the services on top of it.
func New(conf *core.Config, logger core.Logger) (*App, error) {
	db, err := flatfile.Open(conf, logger)
	if err != nil {
		return nil, errors.Wrap(err, "opening data directory")
	}
	hasher, err := account.NewHasher(conf.PasswordHasher)
	if err != nil {
		return nil, err
	}
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return nil, err
	}

	courseSvc := course.NewService(flatfile.NewCourseRepository(db))
	studentSvc := student.NewService(flatfile.NewStudentRepository(db), courseSvc)
	gradeSvc := grade.NewService(flatfile.NewGradeRepository(db))
	profSvc := professor.NewService(flatfile.NewProfessorRepository(db), courseSvc)
	accSvc := account.NewService(flatfile.NewAccountRepository(db), hasher)
	resolver := join.NewScanResolver(studentSvc, profSvc)

	return &App{
		Conf:       conf,
		Logger:     logger,
		DB:         db,
		Courses:    courseSvc,
		Students:   studentSvc,
		Grades:     gradeSvc,
		Professors: profSvc,
		Accounts:   accSvc,
		Resolver:   resolver,
		Stats:      stats.NewEngine(resolver),
		Gradebook:  gradebook.NewCoordinator(studentSvc, gradeSvc, profSvc, courseSvc, resolver, logger),
		Reports:    report.NewService(studentSvc, gradeSvc, courseSvc, resolver),
		Enforcer:   enforcer,
	}, nil
}
