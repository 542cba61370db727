package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/account"
)

const contextTokenKey = "accountToken"

func jwtConfig(secretKey string) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(secretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func GetAccountClaims(acc account.Account, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   acc.Email,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email: acc.Email,
		Role:  acc.Role,
	}
}

// GenerateToken generates a signed JWT token string representing the account Claims.
func GenerateToken(claims *Claims, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func authenticate(l account.Login, svc *account.Service, conf *core.Config) (*Claims, error) {
	acc, err := svc.Login(l)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) || errors.Is(err, account.ErrIncorrectPassword) {
			return nil, errAuthenticationFailed
		}
		return nil, err
	}
	return GetAccountClaims(acc, conf), nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// contextAccount is the account of the request, used to tag error reports.
func contextAccount(ctx echo.Context) (account.Account, bool) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return account.Account{}, false
	}
	return account.Account{Email: claims.Email, Role: claims.Role}, true
}
