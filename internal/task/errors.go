package task

import (
	"errors"
	"fmt"
)

var (
	ErrNilTask            = errors.New("task is nil")
	ErrDuplicateID        = errors.New("task id already exists")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrDescriptionTooLong = fmt.Errorf("description longer than %d characters", MaxDescriptionLen)
)
