package inmemory

import (
	"taskTracker/internal/domain/user/usererrors"
	"taskTracker/internal/domain/user/usermodels"
)

// SaveUser проверяет уникальность email и вставляет пользователя в одной
// критической секции. CreatedAt проставляется здесь.
func (storage *Storage) SaveUser(user usermodels.User) (usermodels.User, error) {
	err := storage.withLock(func() error {
		if _, ok := storage.emails[user.Email]; ok {
			return usererrors.ErrUserIsAlreadyExist
		}
		if _, ok := storage.users[user.UUID]; ok {
			return usererrors.ErrUserIsAlreadyExist
		}

		user.CreatedAt = storage.stamp()
		storage.users[user.UUID] = user
		storage.emails[user.Email] = user.UUID
		return nil
	})
	if err != nil {
		return usermodels.User{}, err
	}

	return user, nil
}

func (storage *Storage) GetUserByID(userID string) (usermodels.User, error) {
	var (
		user usermodels.User
		ok   bool
	)
	storage.withRLock(func() {
		user, ok = storage.users[userID]
	})
	if !ok {
		return usermodels.User{}, usererrors.ErrUserNotExist
	}

	return user, nil
}

func (storage *Storage) GetUserByEmail(email string) (usermodels.User, error) {
	var (
		user usermodels.User
		ok   bool
	)
	storage.withRLock(func() {
		var userID string
		if userID, ok = storage.emails[email]; ok {
			user = storage.users[userID]
		}
	})
	if !ok {
		return usermodels.User{}, usererrors.ErrUserNotExist
	}

	return user, nil
}
