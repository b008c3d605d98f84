package model

import "fmt"

// EntityNotFoundType is reported as "type" in not-found response bodies.
const EntityNotFoundType = "EntityNotFoundException"

type EntityNotFoundError struct {
	Kind string
	Key  any
}

func NewEntityNotFoundError(kind string, key any) *EntityNotFoundError {
	return &EntityNotFoundError{Kind: kind, Key: key}
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Kind, e.Key)
}
