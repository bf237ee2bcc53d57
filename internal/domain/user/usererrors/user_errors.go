package usererrors

import (
	"errors"
)

var (
	ErrUserEmptyInsert    = errors.New("empty insert")
	ErrUserIsAlreadyExist = errors.New("user with this email already exists")
	ErrUserNotExist       = errors.New("user not exists")
	ErrNotValidCreds      = errors.New("invalid email or password")
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("please provide a valid email address")
	ErrShortPassword      = errors.New("password must be at least 6 characters long")
	ErrInternalServer     = errors.New("internal server error")
)
