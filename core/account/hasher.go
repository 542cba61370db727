package account

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hashers available through the passwordHasher setting. Every digest is 64 hex chars.
const (
	HasherSHA256  = "sha256"
	HasherSHA3    = "sha3-256"
	HasherBLAKE2b = "blake2b-256"
)

var ErrUnknownHasher = errors.New("unknown password hasher")

// Hasher computes the stored one-way digest of a password.
type Hasher interface {
	Hash(password string) string
}

type HasherFunc func(password string) string

func (f HasherFunc) Hash(password string) string { return f(password) }

func NewHasher(name string) (Hasher, error) {
	switch name {
	case HasherSHA256, "":
		return HasherFunc(func(pwd string) string {
			sum := sha256.Sum256([]byte(pwd))
			return hex.EncodeToString(sum[:])
		}), nil
	case HasherSHA3:
		return HasherFunc(func(pwd string) string {
			sum := sha3.Sum256([]byte(pwd))
			return hex.EncodeToString(sum[:])
		}), nil
	case HasherBLAKE2b:
		return HasherFunc(func(pwd string) string {
			sum := blake2b.Sum256([]byte(pwd))
			return hex.EncodeToString(sum[:])
		}), nil
	}
	return nil, errors.Wrap(ErrUnknownHasher, name)
}

func checkHash(h Hasher, password, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(password)), []byte(hash)) == 1
}
