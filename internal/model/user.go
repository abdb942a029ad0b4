// File: internal/model/user.go
package model

// User is an account created through signup. Password holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Mobile   string `db:"mobile" json:"mobile"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}
