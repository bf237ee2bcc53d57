package auth

import (
	"errors"
	"fmt"
	"strings"
	"taskTracker/internal/server/auth/autherrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

type ParseOptions struct {
	ExpectedIssuer   string
	ExpectedAudience string
	AllowMethods     []string
	Leeway           time.Duration
}

func (hs HS256Signer) ParseAccessToken(token string, opt ParseOptions) (*Claims, error) {
	claims := Claims{}
	tok, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return hs.Secret, nil
		},
		jwt.WithIssuer(opt.ExpectedIssuer),
		jwt.WithLeeway(opt.Leeway),
		jwt.WithAudience(opt.ExpectedAudience),
		jwt.WithValidMethods(opt.AllowMethods),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(hs.now),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, autherrors.ErrTokenMalformed
	}
	return &claims, nil
}

// Verify проверяет подпись и срок. Истекший токен - ErrTokenExpired,
// все остальное (подпись, структура, чужой issuer) - ErrTokenMalformed.
func (hs HS256Signer) Verify(token string) (Identity, error) {
	claims, err := hs.ParseAccessToken(token, ParseOptions{
		ExpectedIssuer:   hs.GetIssuer(),
		ExpectedAudience: hs.GetAudience(),
		AllowMethods:     []string{jwt.SigningMethodHS256.Alg()},
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, autherrors.ErrTokenExpired
		}
		return Identity{}, fmt.Errorf("%w: %v", autherrors.ErrTokenMalformed, err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return Identity{}, fmt.Errorf("%w: missing subject", autherrors.ErrTokenMalformed)
	}

	return Identity{
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ExtractBearer достает токен из заголовка "Authorization: Bearer <token>".
// Любая другая форма, включая пустой заголовок, - это "токена нет", а не ошибка.
func ExtractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
