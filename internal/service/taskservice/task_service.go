package taskservice

import (
	"strings"
	"taskTracker/internal/domain/task/taskerrors"
	"taskTracker/internal/domain/task/taskmodels"

	"github.com/google/uuid"
)

type TaskStorage interface {
	GetAllTasks(userID string, status taskmodels.TaskStatus) ([]taskmodels.Task, error)
	GetTaskByID(taskID string, userID string) (taskmodels.Task, error)
	AddTask(newTask taskmodels.Task) (taskmodels.Task, error)
	UpdateTaskAttributes(taskID string, userID string, patch taskmodels.TaskPatch) (taskmodels.Task, error)
	DeleteTask(taskID string, userID string) (bool, error)
}

// TaskService - операции над задачами, всегда в рамках одного владельца.
type TaskService struct {
	db TaskStorage
}

func NewTaskService(db TaskStorage) *TaskService {
	return &TaskService{db: db}
}

// GetAllTasks - задачи владельца от новых к старым, status "" - без фильтра.
func (ts *TaskService) GetAllTasks(userID string, status taskmodels.TaskStatus) ([]taskmodels.Task, error) {
	if status != "" && !status.IsValid() {
		return nil, taskerrors.ErrInvalidStatus
	}
	return ts.db.GetAllTasks(userID, status)
}

func (ts *TaskService) GetTaskByID(taskID string, userID string) (taskmodels.Task, error) {
	if taskID == "" {
		return taskmodels.Task{}, taskerrors.ErrFoundNothing
	}

	task, err := ts.db.GetTaskByID(taskID, userID)
	if err != nil {
		return taskmodels.Task{}, err
	}

	return task, nil
}

func (ts *TaskService) CreateTask(newTaskAttributes taskmodels.TaskAttributes, userID string) (taskmodels.Task, error) {
	title := strings.TrimSpace(newTaskAttributes.Title)
	if title == "" {
		return taskmodels.Task{}, taskerrors.ErrInvalidTitle
	}

	status := newTaskAttributes.Status
	if status == "" {
		status = taskmodels.StatusPending
	}
	if !status.IsValid() {
		return taskmodels.Task{}, taskerrors.ErrInvalidStatus
	}

	return ts.db.AddTask(taskmodels.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(newTaskAttributes.Description),
		Status:      status,
	})
}

// UpdateTask меняет только переданные поля. Для чужой и несуществующей
// задачи ответ одинаковый - ErrFoundNothing.
func (ts *TaskService) UpdateTask(taskID string, userID string, patch taskmodels.TaskPatch) (taskmodels.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return taskmodels.Task{}, taskerrors.ErrInvalidTitle
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return taskmodels.Task{}, taskerrors.ErrInvalidStatus
	}
	if taskID == "" {
		return taskmodels.Task{}, taskerrors.ErrFoundNothing
	}

	return ts.db.UpdateTaskAttributes(taskID, userID, patch)
}

// DeleteTaskByID возвращает false, если удалять было нечего.
func (ts *TaskService) DeleteTaskByID(taskID string, userID string) (bool, error) {
	if taskID == "" {
		return false, nil
	}
	return ts.db.DeleteTask(taskID, userID)
}
