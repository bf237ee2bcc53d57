package usermodels

import (
	"strings"
	"time"
)

// User - полная запись пользователя, живет только внутри хранилища и сервиса.
// PasswordHash сериализуется только в снапшот, наружу отдается PublicUser.
type User struct {
	UUID         string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser - то, что видит клиент. Хеша пароля здесь нет и быть не может.
type PublicUser struct {
	UUID      string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		UUID:      u.UUID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type UserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserLoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
