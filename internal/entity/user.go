package entity

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Website   string    `db:"website"`
	Facebook  string    `db:"facebook"`
	Instagram string    `db:"instagram"`
	X         string    `db:"x"`
	Youtube   string    `db:"youtube"`
	LinkedIn  string    `db:"linked_in"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserLoginData is the identity bound to the request by the session
// guard.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
