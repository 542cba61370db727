package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/services/metrics"
)

type (
	Options struct {
		App *apps.App
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		app  *apps.App
		echo *echo.Echo
	}
)

var _ Server = (*server)(nil) // interface compliance check

// NewServer returns the read-only JSON API over opts.App.
func NewServer(opts Options) Server {
	s := &server{
		app:  opts.App,
		echo: echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.app.Conf

	s.echo.HideBanner = true
	s.echo.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.echo.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.echo.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.echo.HTTPErrorHandler = newAppHTTPErrorHandler(s.app.Logger)
	s.echo.Debug = conf.Debug && !conf.TestMode

	s.echo.GET("/", home)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	v1 := s.echo.Group("/v1")
	jwt := middleware.JWTWithConfig(jwtConfig(conf.SecretKey))

	registerAccountAPI(v1, s.app)
	registerRecordsAPI(v1, jwt, s.app)
}

func (s *server) Start() error {
	return s.echo.Start(s.app.Conf.Server.Address)
}

func (s *server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.echo.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to CheckMyGrade API!")
}
