package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core/authz"
)

// permissionMiddleware lets the request through when the role of the token holds perm.
func permissionMiddleware(enforcer *authz.Enforcer, perm authz.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if enforcer.Can(claims.Role, perm) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

// authorizeOwner checks perm, falling back to the read_own action on the same
// resource when ownerEmail is the email of the token holder.
func authorizeOwner(ctx echo.Context, enforcer *authz.Enforcer, perm authz.Permission, ownerEmail string) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if enforcer.Can(claims.Role, perm) {
		return nil
	}
	own := authz.Permission{Resource: perm.Resource, Action: authz.ReadOwn}
	if claims.Email != "" && claims.Email == ownerEmail && enforcer.Can(claims.Role, own) {
		return nil
	}
	return errHttpForbidden
}
