package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMismatch      = errors.New("password mismatch")
	ErrInvalidFormat = errors.New("invalid password hash format")
)

// DummyHash is a structurally valid bcrypt hash that matches no password
// anyone can know. Login compares against it when the account does not
// exist, so the lookup path costs one bcrypt comparison either way.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Hasher struct{ Cost int }

func (h Hasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify returns nil only when plain matches hash. ErrInvalidFormat is
// reported for unparseable hashes; callers must treat it the same as a
// mismatch.
func (h Hasher) Verify(plain, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return ErrInvalidFormat
	}
}
