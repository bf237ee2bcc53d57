package userservice

import (
	"errors"
	"sync"
	"taskTracker/internal/domain/user/usererrors"
	"taskTracker/internal/domain/user/usermodels"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserStorage interface {
	SaveUser(user usermodels.User) (usermodels.User, error)
	GetUserByID(userID string) (usermodels.User, error)
	GetUserByEmail(email string) (usermodels.User, error)
}

type PasswordCodec interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// UserService регистрирует и аутентифицирует пользователей.
// Наружу отдает только usermodels.PublicUser.
type UserService struct {
	db        UserStorage
	codec     PasswordCodec
	valid     *validator.Validate
	dummyHash func() string
}

func NewUserService(db UserStorage, codec PasswordCodec) *UserService {
	return &UserService{
		db:    db,
		codec: codec,
		valid: validator.New(),
		// для несуществующего email сравниваем с этим хешем, чтобы ответ
		// по времени не отличался от неверного пароля
		dummyHash: sync.OnceValue(func() string {
			hash, _ := codec.Hash("dummy-password-for-timing") //nolint:errcheck // пустой хеш просто не совпадет
			return hash
		}),
	}
}

func (us *UserService) GetUserByID(userID string) (usermodels.PublicUser, error) {
	if userID == "" {
		return usermodels.PublicUser{}, usererrors.ErrUserEmptyInsert
	}
	user, err := us.db.GetUserByID(userID)
	if err != nil {
		return usermodels.PublicUser{}, err
	}
	return user.Public(), nil
}

// SaveUser - регистрация. Уникальность email окончательно проверяет хранилище
// под своей блокировкой, предварительный поиск лишь экономит bcrypt.
func (us *UserService) SaveUser(newUser usermodels.UserRequest) (usermodels.PublicUser, error) {
	newUser.Email = usermodels.NormalizeEmail(newUser.Email)

	if err := us.valid.Struct(newUser); err != nil {
		return usermodels.PublicUser{}, credentialsError(err)
	}

	if _, err := us.db.GetUserByEmail(newUser.Email); err == nil {
		return usermodels.PublicUser{}, usererrors.ErrUserIsAlreadyExist
	} else if !errors.Is(err, usererrors.ErrUserNotExist) {
		return usermodels.PublicUser{}, err
	}

	hash, err := us.codec.Hash(newUser.Password)
	if err != nil {
		return usermodels.PublicUser{}, err
	}

	saved, err := us.db.SaveUser(usermodels.User{
		UUID:         uuid.New().String(),
		Email:        newUser.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return usermodels.PublicUser{}, err
	}

	return saved.Public(), nil
}

// LoginUser возвращает ErrNotValidCreds и для неизвестного email, и для
// неверного пароля.
func (us *UserService) LoginUser(userReq usermodels.UserLoginRequest) (usermodels.PublicUser, error) {
	if err := us.valid.Struct(userReq); err != nil {
		return usermodels.PublicUser{}, usererrors.ErrInvalidCredentials
	}

	dbUser, err := us.db.GetUserByEmail(usermodels.NormalizeEmail(userReq.Email))
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotExist) {
			us.codec.Verify(userReq.Password, us.dummyHash())
			return usermodels.PublicUser{}, usererrors.ErrNotValidCreds
		}
		return usermodels.PublicUser{}, err
	}

	if !us.codec.Verify(userReq.Password, dbUser.PasswordHash) {
		return usermodels.PublicUser{}, usererrors.ErrNotValidCreds
	}

	return dbUser.Public(), nil
}

func credentialsError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return usererrors.ErrInvalidCredentials
	}

	switch validationErrs[0].Tag() {
	case "email":
		return usererrors.ErrInvalidEmail
	case "min":
		return usererrors.ErrShortPassword
	default:
		return usererrors.ErrInvalidCredentials
	}
}
