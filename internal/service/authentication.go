// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"

	"blog-api/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser checks password against the stored hash of user. A
// mismatch yields ErrInvalidPassword; a corrupt hash is reported as is.
func AuthenticateUser(user model.User, password string) error {
	err := ComparePassword(user.Password, password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("AuthenticateUser: %w", err)
	}
}
