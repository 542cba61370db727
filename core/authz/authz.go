// Package authz decides which operations an account role may perform.
package authz

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/casbin/casbin/v3"
	"github.com/pkg/errors"
)

//go:embed model.conf policy.csv
var embedFS embed.FS

// Resources
const (
	Student   = "student"
	Professor = "professor"
	Course    = "course"
	Grade     = "grade"
	Stats     = "stats"
	Report    = "report"
	Account   = "account"
)

// Actions
const (
	Read           = "read"
	ReadOwn        = "read_own"
	Write          = "write"
	Delete         = "delete"
	Search         = "search"
	Sort           = "sort"
	ChangePassword = "change_password"
)

var ErrForbidden = errors.New("permission denied")

// Permission is an action on a resource.
type Permission struct {
	Resource string
	Action   string
}

func (p Permission) String() string { return p.Resource + ":" + p.Action }

type Enforcer struct {
	enforcer *casbin.Enforcer
}

// NewEnforcer loads the embedded model and policy.
func NewEnforcer() (*Enforcer, error) {
	dir, err := os.MkdirTemp("", "checkmygrade-casbin-*")
	if err != nil {
		return nil, errors.Wrap(err, "creating casbin dir")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	if err := writeEmbedToDir(dir, "model.conf", "policy.csv"); err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(filepath.Join(dir, "model.conf"), filepath.Join(dir, "policy.csv"))
	if err != nil {
		return nil, errors.Wrap(err, "loading casbin policy")
	}
	return &Enforcer{enforcer: e}, nil
}

func writeEmbedToDir(dir string, names ...string) error {
	for _, name := range names {
		data, err := embedFS.ReadFile(name)
		if err != nil {
			return errors.Wrap(err, name)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}

// Can reports whether role may perform perm. Enforcement errors deny.
func (e *Enforcer) Can(role string, perm Permission) bool {
	ok, err := e.enforcer.Enforce(role, perm.Resource, perm.Action)
	return err == nil && ok
}

// Check is Can returning ErrForbidden on denial.
func (e *Enforcer) Check(role string, perm Permission) error {
	if !e.Can(role, perm) {
		return errors.Wrap(ErrForbidden, perm.String())
	}
	return nil
}
