package inmemory

import (
	"fmt"
	"sync"
	"taskTracker/internal/domain/user/usererrors"
	"taskTracker/internal/domain/user/usermodels"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Users(t *testing.T) {
	storage := NewInMemoryStorage()

	user1 := usermodels.User{
		UUID:         "user1",
		Email:        "alice@example.com",
		PasswordHash: "hash1",
	}

	tests := []struct {
		name        string
		action      func() (any, error)
		check       func(t *testing.T, result any)
		expectError error
	}{
		{
			name: "SaveUser_success",
			action: func() (any, error) {
				return storage.SaveUser(user1)
			},
			check: func(t *testing.T, result any) {
				savedUser := result.(usermodels.User)
				assert.Equal(t, "alice@example.com", savedUser.Email)
				assert.False(t, savedUser.CreatedAt.IsZero())
				assert.Len(t, storage.users, 1)
			},
			expectError: nil,
		},
		{
			name: "SaveUser_duplicate_email",
			action: func() (any, error) {
				return storage.SaveUser(usermodels.User{
					UUID:         "user3",
					Email:        "alice@example.com",
					PasswordHash: "hash3",
				})
			},
			check: func(t *testing.T, _ any) {
				assert.Len(t, storage.users, 1)
			},
			expectError: usererrors.ErrUserIsAlreadyExist,
		},
		{
			name: "SaveUser_duplicate_id",
			action: func() (any, error) {
				return storage.SaveUser(usermodels.User{
					UUID:         "user1",
					Email:        "other@example.com",
					PasswordHash: "hash",
				})
			},
			check:       func(_ *testing.T, _ any) {},
			expectError: usererrors.ErrUserIsAlreadyExist,
		},
		{
			name: "GetUserByID_success",
			action: func() (any, error) {
				return storage.GetUserByID("user1")
			},
			check: func(t *testing.T, result any) {
				user := result.(usermodels.User)
				assert.Equal(t, "hash1", user.PasswordHash)
			},
			expectError: nil,
		},
		{
			name: "GetUserByID_not_exist",
			action: func() (any, error) {
				return storage.GetUserByID("user404")
			},
			check:       func(_ *testing.T, _ any) {},
			expectError: usererrors.ErrUserNotExist,
		},
		{
			name: "GetUserByEmail_success",
			action: func() (any, error) {
				return storage.GetUserByEmail("alice@example.com")
			},
			check: func(t *testing.T, result any) {
				user := result.(usermodels.User)
				assert.Equal(t, "user1", user.UUID)
			},
			expectError: nil,
		},
		{
			name: "GetUserByEmail_not_exist",
			action: func() (any, error) {
				return storage.GetUserByEmail("unknown@example.com")
			},
			check:       func(_ *testing.T, _ any) {},
			expectError: usererrors.ErrUserNotExist,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.action()
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
			} else {
				assert.NoError(t, err)
			}
			tc.check(t, result)
		})
	}
}

func TestStorage_SaveUser_ConcurrentSameEmail(t *testing.T) {
	storage := NewInMemoryStorage()

	const attempts = 64

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	start := make(chan struct{})
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := storage.SaveUser(usermodels.User{
				UUID:         fmt.Sprintf("user-%d", i),
				Email:        "race@example.com",
				PasswordHash: "hash",
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, usererrors.ErrUserIsAlreadyExist):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, storage.users, 1)
}
