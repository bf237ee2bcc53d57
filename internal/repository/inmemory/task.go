package inmemory

import (
	"cmp"
	"slices"
	"taskTracker/internal/domain/task/taskerrors"
	"taskTracker/internal/domain/task/taskmodels"
	"taskTracker/internal/domain/user/usererrors"

	"github.com/pkg/errors"
)

// GetAllTasks возвращает задачи владельца от новых к старым.
// Пустой status - без фильтра.
func (storage *Storage) GetAllTasks(userID string, status taskmodels.TaskStatus) ([]taskmodels.Task, error) {
	tasks := []taskmodels.Task{}

	storage.withRLock(func() {
		for _, task := range storage.tasks {
			if task.UserID != userID {
				continue
			}
			if status != "" && task.Status != status {
				continue
			}
			tasks = append(tasks, task)
		}
	})

	slices.SortFunc(tasks, func(a, b taskmodels.Task) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})

	return tasks, nil
}

// GetTaskByID не отличает "нет такой задачи" от "задача чужая".
func (storage *Storage) GetTaskByID(taskID string, userID string) (taskmodels.Task, error) {
	var (
		task taskmodels.Task
		ok   bool
	)
	storage.withRLock(func() {
		task, ok = storage.tasks[taskID]
	})
	if !ok || task.UserID != userID {
		return taskmodels.Task{}, taskerrors.ErrFoundNothing
	}

	return task, nil
}

func (storage *Storage) AddTask(newTask taskmodels.Task) (taskmodels.Task, error) {
	err := storage.withLock(func() error {
		if _, ok := storage.users[newTask.UserID]; !ok {
			return usererrors.ErrUserNotExist
		}
		if _, ok := storage.tasks[newTask.ID]; ok {
			return taskerrors.ErrTaskIsAlreadyExist
		}

		now := storage.stamp()
		newTask.CreatedAt = now
		newTask.UpdatedAt = now
		storage.tasks[newTask.ID] = newTask
		return nil
	})
	if err != nil {
		return taskmodels.Task{}, err
	}

	return newTask, nil
}

// UpdateTaskAttributes находит задачу владельца и применяет patch в одной
// критической секции, так что параллельные обновления не теряются.
func (storage *Storage) UpdateTaskAttributes(
	taskID string,
	userID string,
	patch taskmodels.TaskPatch,
) (taskmodels.Task, error) {
	var updated taskmodels.Task

	err := storage.withLock(func() error {
		task, ok := storage.tasks[taskID]
		if !ok || task.UserID != userID {
			return taskerrors.ErrFoundNothing
		}

		patch.ApplyTo(&task)
		task.UpdatedAt = storage.stamp()
		storage.tasks[taskID] = task
		updated = task
		return nil
	})
	if err != nil {
		return taskmodels.Task{}, err
	}

	return updated, nil
}

// DeleteTask возвращает false, если у владельца нет такой задачи.
// Повторный вызов безопасен.
func (storage *Storage) DeleteTask(taskID string, userID string) (bool, error) {
	err := storage.withLock(func() error {
		task, ok := storage.tasks[taskID]
		if !ok || task.UserID != userID {
			return taskerrors.ErrFoundNothing
		}

		delete(storage.tasks, taskID)
		return nil
	})
	if errors.Is(err, taskerrors.ErrFoundNothing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
