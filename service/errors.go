package service

import (
	"errors"

	"github.com/lontso23/FitnessCoachApp/repository"
)

// Error kinds checked once at the handler boundary. Services never leak
// store-level errors for the cases below.
var (
	// ErrNotFound covers both "absent" and "owned by another trainer" so
	// resource existence never leaks across accounts.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized covers bad credentials and missing/invalid/expired
	// tokens, including tokens whose subject no longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is returned when registering an email that is already
	// taken.
	ErrConflict = errors.New("email already registered")
)

// mapNotFound translates the repository absence sentinel into the service
// error kind and passes everything else through untouched.
func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
