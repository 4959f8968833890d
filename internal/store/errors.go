package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// NotFoundError names the missing entity kind and id. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Kind Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found.", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

func (e *badRequestError) Is(target error) bool { return target == ErrBadRequest }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

func notFound(kind Kind, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}
