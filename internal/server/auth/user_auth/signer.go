package auth

import (
	"taskTracker/internal"
	"taskTracker/internal/server/auth/autherrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity - то, что токен утверждает о владельце.
type Identity struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// HS256Signer выпускает и проверяет токены сессии. Ключ один на процесс.
type HS256Signer struct {
	Secret    []byte
	Issuer    string
	Audience  string
	AccessTTL time.Duration
	Now       func() time.Time
}

// NewHS256Signer не дает собрать подписчика с пустым ключом.
func NewHS256Signer(secret []byte, issuer, audience string, ttl time.Duration) (HS256Signer, error) {
	if len(secret) == 0 {
		return HS256Signer{}, autherrors.ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = internal.DefaultTokenTTL
	}

	return HS256Signer{
		Secret:    secret,
		Issuer:    issuer,
		Audience:  audience,
		AccessTTL: ttl,
		Now:       time.Now,
	}, nil
}

func (hs HS256Signer) GetIssuer() string {
	return hs.Issuer
}

func (hs HS256Signer) GetAudience() string {
	return hs.Audience
}

func (hs HS256Signer) now() time.Time {
	if hs.Now == nil {
		return time.Now()
	}
	return hs.Now()
}

// NewAccessToken выпускает токен со сроком AccessTTL.
func (hs HS256Signer) NewAccessToken(identity Identity) (string, error) {
	return hs.Issue(identity, hs.AccessTTL)
}

func (hs HS256Signer) Issue(identity Identity, ttl time.Duration) (string, error) {
	if len(hs.Secret) == 0 {
		return "", autherrors.ErrMissingSecret
	}

	now := hs.now()
	claims := Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    hs.Issuer,
			Audience:  jwt.ClaimStrings{hs.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(hs.Secret)
}
