package util

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword takes a plain-text password and returns a hashed password.
func HashPassword(password string) (string, error) {
	// Generate a salt and hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	// Compare the plain password with the stored hashed password
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil // Returns true if passwords match, false otherwise
}
