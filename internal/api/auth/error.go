package auth

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists    = response.NewError(http.StatusConflict, "email already exists")
	ErrUsernameAlreadyExists = response.NewError(http.StatusConflict, "username already exists")
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrUserWithEmailNotFound = response.NewError(http.StatusNotFound, "user with email not found")
	ErrInvalidPassword       = response.NewError(http.StatusUnauthorized, "password is wrong")
	ErrAdminOnly             = response.NewError(http.StatusForbidden, "admin access required")
	ErrorInvalidToken        = response.NewError(http.StatusUnauthorized, "invalid token")
)
