package taskerrors

import "errors"

var (
	ErrFoundNothing       = errors.New("task not found")
	ErrInvalidTitle       = errors.New("title is required and cannot be empty")
	ErrInvalidStatus      = errors.New(`status must be either "pending" or "done"`)
	ErrTaskIsAlreadyExist = errors.New("task is already exist")
)
