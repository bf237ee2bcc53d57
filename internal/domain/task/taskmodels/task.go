package taskmodels

import (
	"encoding/json"
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusDone:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskAttributes - тело запроса на создание задачи.
type TaskAttributes struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// UnmarshalJSON: null и значение не того типа не должны превращаться в
// пропущенное поле. Для title это пустая строка (не пройдет проверку),
// для status - пустая строка или исходный JSON (default pending при создании,
// ErrInvalidStatus в остальных случаях).
func (a *TaskAttributes) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = TaskAttributes{}
	if v, ok := raw["title"]; ok {
		a.Title = titleValue(v)
	}
	if v, ok := raw["description"]; ok {
		desc, err := descriptionValue(v)
		if err != nil {
			return err
		}
		a.Description = desc
	}
	if v, ok := raw["status"]; ok {
		a.Status = statusValue(v)
	}
	return nil
}

// TaskPatch - частичное обновление: nil значит "поля не было в запросе".
// Явный null - это пустое значение, а не пропуск.
type TaskPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *TaskStatus `json:"status"`
}

func (p *TaskPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = TaskPatch{}
	if v, ok := raw["title"]; ok {
		title := titleValue(v)
		p.Title = &title
	}
	if v, ok := raw["description"]; ok {
		desc, err := descriptionValue(v)
		if err != nil {
			return err
		}
		p.Description = &desc
	}
	if v, ok := raw["status"]; ok {
		status := statusValue(v)
		p.Status = &status
	}
	return nil
}

func titleValue(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

func descriptionValue(v json.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// statusValue: строка как есть, null - "", иное - сырой JSON, который
// никогда не совпадет с допустимым статусом.
func statusValue(v json.RawMessage) TaskStatus {
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return TaskStatus(v)
	}
	if s == nil {
		return ""
	}
	return TaskStatus(*s)
}

// ApplyTo переносит заданные поля в задачу. UpdatedAt выставляет хранилище.
func (p TaskPatch) ApplyTo(task *Task) {
	if p.Title != nil {
		task.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		task.Description = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
}
