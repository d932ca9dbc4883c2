package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a unique index.
	// Callers surface it as a client error; it is never retried.
	ErrDuplicate = errors.New("duplicate key")
)

func isDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
