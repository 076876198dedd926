package auth

import "time"

type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=32"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username  string `json:"username" validate:"omitempty,min=3,max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=50"`
	Password  string `json:"password" validate:"omitempty,min=8,max=32"`
	FirstName string `json:"first_name" validate:"omitempty,max=30"`
	LastName  string `json:"last_name" validate:"omitempty,max=30"`
	Website   string `json:"website" validate:"omitempty,url,max=100"`
	Facebook  string `json:"facebook" validate:"omitempty,url,max=100"`
	Instagram string `json:"instagram" validate:"omitempty,url,max=100"`
	X         string `json:"x" validate:"omitempty,url,max=100"`
	Youtube   string `json:"youtube" validate:"omitempty,url,max=100"`
	LinkedIn  string `json:"linked_in" validate:"omitempty,url,max=100"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Website   string    `json:"website,omitempty"`
	Facebook  string    `json:"facebook,omitempty"`
	Instagram string    `json:"instagram,omitempty"`
	X         string    `json:"x,omitempty"`
	Youtube   string    `json:"youtube,omitempty"`
	LinkedIn  string    `json:"linked_in,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SessionResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   int64        `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

type UsersListResponse struct {
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Total  int            `json:"total"`
	Users  []UserResponse `json:"users"`
}
