package server

import (
	"net/http"
	"taskTracker/internal/domain/task/taskerrors"
	"taskTracker/internal/domain/task/taskmodels"
	"taskTracker/internal/domain/user/usererrors"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// обрабатываем для вывода, возвращаем респонсы с ошибками и проч.

func (api *ToDoListAPI) getTasks(ctx *gin.Context) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return
	}

	status := taskmodels.TaskStatus(ctx.Query("status"))
	tasks, err := api.tasks.GetAllTasks(userID, status)
	if err != nil {
		if errors.Is(err, taskerrors.ErrInvalidStatus) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		internalError(ctx, err, "list tasks failed")
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (api *ToDoListAPI) getTaskByID(ctx *gin.Context) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return
	}

	task, err := api.tasks.GetTaskByID(ctx.Param("id"), userID)
	if err != nil {
		taskError(ctx, err, "get task failed")
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (api *ToDoListAPI) createTask(ctx *gin.Context) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return
	}

	var newTaskAttributes taskmodels.TaskAttributes
	if err := ctx.ShouldBindJSON(&newTaskAttributes); err != nil {
		bindError(ctx, err)
		return
	}

	task, err := api.tasks.CreateTask(newTaskAttributes, userID)
	if err != nil {
		// владелец удален, а токен еще живой
		if errors.Is(err, usererrors.ErrUserNotExist) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": usererrors.ErrUserNotExist.Error()})
			return
		}
		taskError(ctx, err, "create task failed")
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (api *ToDoListAPI) updateTask(ctx *gin.Context) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return
	}

	var patch taskmodels.TaskPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err)
		return
	}

	task, err := api.tasks.UpdateTask(ctx.Param("id"), userID, patch)
	if err != nil {
		taskError(ctx, err, "update task failed")
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (api *ToDoListAPI) deleteTask(ctx *gin.Context) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return
	}

	deleted, err := api.tasks.DeleteTaskByID(ctx.Param("id"), userID)
	if err != nil {
		internalError(ctx, err, "delete task failed")
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": taskerrors.ErrFoundNothing.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func taskError(ctx *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, taskerrors.ErrFoundNothing):
		ctx.JSON(http.StatusNotFound, gin.H{"error": taskerrors.ErrFoundNothing.Error()})
	case errors.Is(err, taskerrors.ErrInvalidTitle), errors.Is(err, taskerrors.ErrInvalidStatus):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		internalError(ctx, err, msg)
	}
}
