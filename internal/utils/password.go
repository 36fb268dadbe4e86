package utils

import "golang.org/x/crypto/bcrypt"

// HashPIN returns the bcrypt hash of the admin PIN using the given cost.
// The plain PIN from the environment is hashed once at startup so the
// process never keeps it around in comparable form.
func HashPIN(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPIN safely compares the stored hash with user input.
func VerifyPIN(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
