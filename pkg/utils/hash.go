package utils

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UnusablePassword returns a bcrypt hash of a throwaway random value.
// Accounts log in with a confirmation code, never with this credential,
// so nothing that could ever be presented is stored.
func UnusablePassword() (string, error) {
	return HashPassword(uuid.NewString())
}
