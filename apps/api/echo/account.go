package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/apps"
	"github.com/trezcool/checkmygrade/core/account"
)

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

type accountApi struct {
	app *apps.App
}

func registerAccountAPI(g *echo.Group, app *apps.App) {
	api := accountApi{app: app}

	// TODO: rate limit `/login`
	g.POST("/login", api.login)
}

func (api *accountApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}

	claims, err := authenticate(account.Login{Email: data.Email, Password: data.Password}, api.app.Accounts, api.app.Conf)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims, api.app.Conf.SecretKey)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}
