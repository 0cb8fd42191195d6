package main

import (
	"errors"
	"fmt"
)

// ErrInvalidPage is matched by every StructureError.
var ErrInvalidPage = errors.New("Invalid page format")

// StructureError reports that an expected section of the specification
// could not be located.
type StructureError struct {
	What   string // e.g. "binary form section"
	Anchor string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: no %s with anchor %q", ErrInvalidPage, e.What, e.Anchor)
}

func (e *StructureError) Is(target error) bool {
	return target == ErrInvalidPage
}

// FieldError reports a malformed or missing field inside one of the
// instruction tables.
type FieldError struct {
	Group string
	Table int // zero-based index of the table within its group
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("group %q, table %d: %s: %s", e.Group, e.Table, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FetchError reports that the specification document could not be
// obtained at all.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not get page %s: %s", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CollisionError reports two instructions that map to the same key in
// the generated header.
type CollisionError struct {
	Kind          string // "enum name" or "opcode"
	Key           string
	First, Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s collision on %s between %s and %s", e.Kind, e.Key, e.First, e.Second)
}

// StaleError is returned by the check mode when the file on disk does
// not match what would be generated.
type StaleError struct {
	Path string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%s is out of date", e.Path)
}
