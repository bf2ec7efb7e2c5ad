package password

import (
	"hotel-reservation/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errs.New("password hashing failed")
	ErrMismatch      = errs.New("password does not match")
	ErrEmpty         = errs.New("password is empty")
)

const Cost = bcrypt.DefaultCost

// dummyHash is compared against when the account does not exist so that
// unknown emails take as long as wrong passwords.
var dummyHash = mustHash("not-a-real-password")

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errs.Mark(err, ErrMismatch)
	}
	return nil
}

// CompareDummy spends one bcrypt comparison and always fails.
func CompareDummy(plain string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
	return ErrMismatch
}

func mustHash(plain string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		panic(err)
	}
	return h
}
