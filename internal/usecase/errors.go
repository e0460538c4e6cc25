package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// InputError describes a rejected field. It matches ErrInvalidInput.
type InputError struct {
	Field   string
	Message string
}

func NewInputError(field, message string) *InputError {
	return &InputError{Field: field, Message: message}
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError names the missing entity kind and id. It matches ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func invalidID(id int64) error {
	return NewInputError("id", fmt.Sprintf("id must be greater than 0, got %d", id))
}
