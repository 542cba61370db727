package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core/authz"
	"github.com/trezcool/checkmygrade/core/grade"
	"github.com/trezcool/checkmygrade/core/student"
	"github.com/trezcool/checkmygrade/services/metrics"
)

type (
	StudentList struct {
		Count    int               `json:"count"`
		Students []student.Student `json:"students"`
	}

	CourseStats struct {
		CourseID string  `json:"course_id"`
		Students int     `json:"students"`
		Mean     float64 `json:"mean"`
		Median   float64 `json:"median"`
	}
)

type recordsApi struct {
	app *apps.App
}

func registerRecordsAPI(g *echo.Group, jwt echo.MiddlewareFunc, app *apps.App) {
	api := recordsApi{app: app}
	can := func(resource, action string) echo.MiddlewareFunc {
		return permissionMiddleware(app.Enforcer, authz.Permission{Resource: resource, Action: action})
	}

	ag := g.Group("", jwt)
	ag.GET("/students", api.queryStudents, can(authz.Student, authz.Search))
	ag.GET("/students/:first/:last", api.retrieveStudent)
	ag.GET("/grades/:first/:last/:course", api.retrieveGrade)
	ag.GET("/courses/:id/report", api.courseReport, can(authz.Report, authz.Read))
	ag.GET("/courses/:id/stats", api.courseStats, can(authz.Stats, authz.Read))
	ag.GET("/professors/:name/report", api.professorReport, can(authz.Report, authz.Read))
}

func (api *recordsApi) queryStudents(ctx echo.Context) error {
	var q StudentQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}

	start := time.Now()
	students, err := api.app.Students.Search(q.Search)
	if err != nil {
		return errors.Wrap(err, "searching students")
	}
	students = student.Sort(students, q.Sort, q.Order)
	metrics.ObserveQuery("api_students", time.Since(start))

	return ctx.JSON(http.StatusOK, StudentList{Count: len(students), Students: students})
}

func studentKeyParam(ctx echo.Context) student.Key {
	return student.Key{FirstName: ctx.Param("first"), LastName: ctx.Param("last")}
}

func (api *recordsApi) retrieveStudent(ctx echo.Context) error {
	r, err := api.app.Reports.Student(studentKeyParam(ctx))
	if err != nil {
		return err
	}
	perm := authz.Permission{Resource: authz.Student, Action: authz.Read}
	if err = authorizeOwner(ctx, api.app.Enforcer, perm, r.Student.Email); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *recordsApi) retrieveGrade(ctx echo.Context) error {
	r, err := api.app.Reports.Grade(grade.NewKey(studentKeyParam(ctx), ctx.Param("course")))
	if err != nil {
		return err
	}
	perm := authz.Permission{Resource: authz.Report, Action: authz.Read}
	if err = authorizeOwner(ctx, api.app.Enforcer, perm, r.Email); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *recordsApi) courseReport(ctx echo.Context) error {
	r, err := api.app.Reports.Course(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *recordsApi) courseStats(ctx echo.Context) error {
	id := ctx.Param("id")
	if _, err := api.app.Courses.Get(id); err != nil {
		return err
	}
	mean, err := api.app.Stats.Mean(id)
	if err != nil {
		return errors.Wrap(err, "computing mean")
	}
	median, err := api.app.Stats.Median(id)
	if err != nil {
		return errors.Wrap(err, "computing median")
	}
	return ctx.JSON(http.StatusOK, CourseStats{
		CourseID: id,
		Students: mean.Count,
		Mean:     mean.Value,
		Median:   median.Value,
	})
}

func (api *recordsApi) professorReport(ctx echo.Context) error {
	r, err := api.app.Reports.Professor(ctx.Param("name"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}
