package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflicts with a stored row")
	ErrMissingReference = errors.New("referenced row does not exist")
	ErrCorruptRow       = errors.New("stored row does not validate")
	ErrUnsupportedType  = errors.New("type is not persisted")
)

type NotFoundError struct {
	TypeName string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.TypeName, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MissingReferenceError names the row a write pointed at that is not stored.
type MissingReferenceError struct {
	Table string
	ID    string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Table, e.ID)
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}

// CorruptRowError is returned when a row no longer rebuilds into a valid value
// or no longer matches the fingerprint of its canonical payload.
type CorruptRowError struct {
	Table string
	ID    string
	Err   error
}

func (e *CorruptRowError) Error() string {
	return fmt.Sprintf("corrupt row %s/%s: %v", e.Table, e.ID, e.Err)
}

func (e *CorruptRowError) Is(target error) bool {
	return target == ErrCorruptRow
}

func (e *CorruptRowError) Unwrap() error {
	return e.Err
}

var errFingerprint = errors.New("fingerprint mismatch")
