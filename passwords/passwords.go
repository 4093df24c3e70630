package passwords

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const MinLength = 8

var ErrTooShort = errors.New("passwords: password must be at least 8 characters")

// Hash returns the bcrypt hash of a new password.
func Hash(password string) (string, error) {
	if len(password) < MinLength {
		return "", ErrTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Matches(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
