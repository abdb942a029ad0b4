package store

import (
	"context"

	"blog-api/internal/database"
	"blog-api/internal/model"
)

// CreateUser inserts u and fills in its generated ID.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, mobile, username, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		u.Name,
		u.Email,
		u.Mobile,
		u.Username,
		u.Password,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, mobile, username, password
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Mobile,
		&u.Username,
		&u.Password,
	); err != nil {
		return nil, wrap("GetUserByUsername", err)
	}
	return u, nil
}

func UsernameExists(ctx context.Context, db database.DB, username string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	if err != nil {
		return false, wrap("UsernameExists", err)
	}
	return exists, nil
}

func EmailExists(ctx context.Context, db database.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, wrap("EmailExists", err)
	}
	return exists, nil
}
