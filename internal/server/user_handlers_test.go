package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"taskTracker/internal/domain/user/usererrors"
	"taskTracker/internal/domain/user/usermodels"
	"taskTracker/internal/server/auth/password"
	auth "taskTracker/internal/server/auth/user_auth"
	"taskTracker/internal/server/mocks"
	"taskTracker/internal/service/taskservice"
	"taskTracker/internal/service/userservice"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testCodec = password.NewCodec(bcrypt.MinCost)

func newTestAPI(repo Storage, signer TokenSigner) *ToDoListAPI {
	return &ToDoListAPI{
		users:       userservice.NewUserService(repo, testCodec),
		tasks:       taskservice.NewTaskService(repo),
		tokenSigner: signer,
		started:     time.Now(),
	}
}

// withUser подкладывает в контекст то, что обычно кладет AuthMiddleware.
func withUser(userID any) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != nil {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func TestRegister(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	type want struct {
		body       string
		statusCode int
	}

	tests := []struct {
		name       string
		userJSON   string
		lookupMock bool
		lookupErr  error
		saveMock   bool
		saveErr    error
		want       want
	}{
		{
			name:       "Register success",
			userJSON:   `{"email":"A@B.com","password":"secret1"}`,
			lookupMock: true,
			lookupErr:  usererrors.ErrUserNotExist,
			saveMock:   true,
			want: want{
				body:       `{"id":"2246b7cc-4afa-4e31-abc9-24f8c95692f1","email":"a@b.com","createdAt":"2025-03-01T10:00:00Z"}`,
				statusCode: http.StatusCreated,
			},
		},
		{
			name:     "Bad JSON",
			userJSON: `{name=jsonDoesNotExist}`,
			want: want{
				statusCode: http.StatusBadRequest,
				body:       `{"error":"invalid character`,
			},
		},
		{
			name:     "Missing password",
			userJSON: `{"email":"a@b.com"}`,
			want: want{
				statusCode: http.StatusUnprocessableEntity,
				body:       usererrors.ErrInvalidCredentials.Error(),
			},
		},
		{
			name:     "Invalid email",
			userJSON: `{"email":"not-an-email","password":"secret1"}`,
			want: want{
				statusCode: http.StatusUnprocessableEntity,
				body:       usererrors.ErrInvalidEmail.Error(),
			},
		},
		{
			name:     "Short password",
			userJSON: `{"email":"a@b.com","password":"12345"}`,
			want: want{
				statusCode: http.StatusUnprocessableEntity,
				body:       usererrors.ErrShortPassword.Error(),
			},
		},
		{
			name:       "User already exists",
			userJSON:   `{"email":"a@b.com","password":"secret1"}`,
			lookupMock: true,
			want: want{
				statusCode: http.StatusConflict,
				body:       usererrors.ErrUserIsAlreadyExist.Error(),
			},
		},
		{
			name:       "Internal server error",
			userJSON:   `{"email":"a@b.com","password":"secret1"}`,
			lookupMock: true,
			lookupErr:  usererrors.ErrUserNotExist,
			saveMock:   true,
			saveErr:    errors.New("disk full"),
			want: want{
				statusCode: http.StatusInternalServerError,
				body:       usererrors.ErrInternalServer.Error(),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewStorage(t)
			srv := newTestAPI(repo, nil)

			r := gin.New()
			r.POST("/register", srv.register)
			httpSrv := httptest.NewServer(r)
			defer httpSrv.Close()

			if tc.lookupMock {
				repo.On("GetUserByEmail", "a@b.com").Return(usermodels.User{}, tc.lookupErr)
			}
			if tc.saveMock {
				repo.On("SaveUser", mock.MatchedBy(func(user usermodels.User) bool {
					return user.Email == "a@b.com" && user.PasswordHash != "" && user.PasswordHash != "secret1"
				})).Return(usermodels.User{
					UUID:         "2246b7cc-4afa-4e31-abc9-24f8c95692f1",
					Email:        "a@b.com",
					PasswordHash: "$2a$04$hash",
					CreatedAt:    created,
				}, tc.saveErr)
			}

			req := resty.New().R()
			req.URL = httpSrv.URL + "/register"
			req.Method = http.MethodPost
			req.Body = tc.userJSON

			res, err := req.Send()
			require.NoError(t, err)
			assert.Equal(t, tc.want.statusCode, res.StatusCode())
			if tc.want.statusCode == http.StatusCreated {
				assert.JSONEq(t, tc.want.body, string(res.Body()))
				assert.NotContains(t, string(res.Body()), "passwordHash")
			} else {
				assert.Contains(t, string(res.Body()), tc.want.body)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)

	hash, err := testCodec.Hash("secret1")
	require.NoError(t, err)
	stored := usermodels.User{UUID: "u1", Email: "a@b.com", PasswordHash: hash}

	tests := []struct {
		name        string
		body        string
		lookupMock  bool
		userFromDB  usermodels.User
		lookupErr   error
		signerMock  bool
		signerErr   error
		wantStatus  int
		wantContain string
	}{
		{
			name:        "success",
			body:        `{"email":"a@b.com","password":"secret1"}`,
			lookupMock:  true,
			userFromDB:  stored,
			signerMock:  true,
			wantStatus:  http.StatusOK,
			wantContain: `{"token":"signed.jwt.token"}`,
		},
		{
			name:        "wrong password",
			body:        `{"email":"a@b.com","password":"secret2"}`,
			lookupMock:  true,
			userFromDB:  stored,
			wantStatus:  http.StatusUnauthorized,
			wantContain: usererrors.ErrNotValidCreds.Error(),
		},
		{
			name:        "unknown email",
			body:        `{"email":"a@b.com","password":"secret1"}`,
			lookupMock:  true,
			lookupErr:   usererrors.ErrUserNotExist,
			wantStatus:  http.StatusUnauthorized,
			wantContain: usererrors.ErrNotValidCreds.Error(),
		},
		{
			name:        "missing fields",
			body:        `{"email":"a@b.com"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantContain: usererrors.ErrInvalidCredentials.Error(),
		},
		{
			name:        "bad json",
			body:        `{`,
			wantStatus:  http.StatusBadRequest,
			wantContain: "error",
		},
		{
			name:        "signer failure",
			body:        `{"email":"a@b.com","password":"secret1"}`,
			lookupMock:  true,
			userFromDB:  stored,
			signerMock:  true,
			signerErr:   errors.New("sign failed"),
			wantStatus:  http.StatusInternalServerError,
			wantContain: usererrors.ErrInternalServer.Error(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewStorage(t)
			signer := mocks.NewTokenSigner(t)
			srv := newTestAPI(repo, signer)

			r := gin.New()
			r.POST("/login", srv.login)
			httpSrv := httptest.NewServer(r)
			defer httpSrv.Close()

			if tc.lookupMock {
				repo.On("GetUserByEmail", "a@b.com").Return(tc.userFromDB, tc.lookupErr)
			}
			if tc.signerMock {
				signer.On("NewAccessToken", auth.Identity{UserID: "u1", Email: "a@b.com"}).
					Return("signed.jwt.token", tc.signerErr)
			}

			res, err := resty.New().R().
				SetHeader("Content-Type", "application/json").
				SetBody(tc.body).
				Post(httpSrv.URL + "/login")

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode())
			assert.Contains(t, string(res.Body()), tc.wantContain)
		})
	}
}

func TestGetMe(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)

	tests := []struct {
		name        string
		userIDCtx   any
		mockFlag    bool
		userFromDB  usermodels.User
		mockErr     error
		wantStatus  int
		wantContain string
	}{
		{
			name:        "success",
			userIDCtx:   "u1",
			mockFlag:    true,
			userFromDB:  usermodels.User{UUID: "u1", Email: "a@b.com", PasswordHash: "secret-hash"},
			wantStatus:  http.StatusOK,
			wantContain: `"email":"a@b.com"`,
		},
		{
			name:        "no user in context",
			wantStatus:  http.StatusUnauthorized,
			wantContain: "unauthorized",
		},
		{
			name:        "wrong user id type",
			userIDCtx:   42,
			wantStatus:  http.StatusInternalServerError,
			wantContain: "userID has wrong type",
		},
		{
			name:        "user deleted",
			userIDCtx:   "u1",
			mockFlag:    true,
			mockErr:     usererrors.ErrUserNotExist,
			wantStatus:  http.StatusUnauthorized,
			wantContain: usererrors.ErrUserNotExist.Error(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewStorage(t)
			srv := newTestAPI(repo, nil)

			r := gin.New()
			r.Use(withUser(tc.userIDCtx))
			r.GET("/users/me", srv.getMe)
			httpSrv := httptest.NewServer(r)
			defer httpSrv.Close()

			if tc.mockFlag {
				repo.On("GetUserByID", "u1").Return(tc.userFromDB, tc.mockErr)
			}

			res, err := resty.New().R().Get(httpSrv.URL + "/users/me")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode())
			assert.Contains(t, string(res.Body()), tc.wantContain)
			assert.NotContains(t, string(res.Body()), "secret-hash")
		})
	}
}
