package password

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// ErrTooLong - bcrypt молча обрезает пароль после 72 байт, поэтому такие отклоняем.
var ErrTooLong = errors.New("password is longer than 72 bytes")

const maxPasswordBytes = 72

// Codec хеширует пароли bcrypt. Соль случайная на каждый вызов и хранится в хеше.
type Codec struct {
	Cost int
}

func NewCodec(cost int) Codec {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Codec{Cost: cost}
}

func (c Codec) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.Cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

// Verify никогда не падает на битом хеше - просто false.
func (c Codec) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
