package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnchanged         = errors.New("already in requested state")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

const (
	uniqueViolation       = "23505"
	usersUsernameKey      = "users_username_key"
	usersEmailKey         = "users_email_key"
	foreignKeyViolation   = "23503"
	postsUserIDForeignKey = "posts_user_id_fkey"
)

// wrap translates driver errors into store errors and tags them with the
// calling function.
func wrap(fn string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", fn, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation && pgErr.ConstraintName == usersUsernameKey:
			return fmt.Errorf("%s: %w", fn, ErrDuplicateUsername)
		case pgErr.Code == uniqueViolation && pgErr.ConstraintName == usersEmailKey:
			return fmt.Errorf("%s: %w", fn, ErrDuplicateEmail)
		case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == postsUserIDForeignKey:
			// the owner vanished between lookup and insert
			return fmt.Errorf("%s: %w", fn, ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", fn, err)
}
