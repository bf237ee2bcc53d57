package autherrors

import "errors"

var (
	ErrMissingSecret      = errors.New("jwt secret is required")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenMalformed     = errors.New("invalid token")
	ErrMissingAccessToken = errors.New("access token is required")
)
