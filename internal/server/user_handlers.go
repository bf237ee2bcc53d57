package server

import (
	"net/http"
	"taskTracker/internal/domain/user/usererrors"
	"taskTracker/internal/domain/user/usermodels"
	"taskTracker/internal/server/auth/password"
	auth "taskTracker/internal/server/auth/user_auth"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func (api *ToDoListAPI) register(ctx *gin.Context) {
	var user usermodels.UserRequest

	if err := ctx.ShouldBindJSON(&user); err != nil {
		bindError(ctx, err)
		return
	}

	savedUser, err := api.users.SaveUser(user)
	if err != nil {
		switch {
		case errors.Is(err, usererrors.ErrInvalidCredentials),
			errors.Is(err, usererrors.ErrInvalidEmail),
			errors.Is(err, usererrors.ErrShortPassword),
			errors.Is(err, password.ErrTooLong):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, usererrors.ErrUserIsAlreadyExist):
			ctx.JSON(http.StatusConflict, gin.H{"error": usererrors.ErrUserIsAlreadyExist.Error()})
		default:
			internalError(ctx, err, "register failed")
		}
		return
	}

	ctx.JSON(http.StatusCreated, savedUser)
}

func (api *ToDoListAPI) login(ctx *gin.Context) {
	var usLogReq usermodels.UserLoginRequest

	if err := ctx.ShouldBindJSON(&usLogReq); err != nil {
		bindError(ctx, err)
		return
	}

	user, err := api.users.LoginUser(usLogReq)
	if err != nil {
		switch {
		case errors.Is(err, usererrors.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, usererrors.ErrNotValidCreds):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": usererrors.ErrNotValidCreds.Error()})
		default:
			internalError(ctx, err, "login failed")
		}
		return
	}

	token, err := api.tokenSigner.NewAccessToken(auth.Identity{UserID: user.UUID, Email: user.Email})
	if err != nil {
		internalError(ctx, err, "token issue failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

func (api *ToDoListAPI) getMe(ctx *gin.Context) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return
	}

	user, err := api.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotExist) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": usererrors.ErrUserNotExist.Error()})
			return
		}
		internalError(ctx, err, "get user failed")
		return
	}

	ctx.JSON(http.StatusOK, user)
}
