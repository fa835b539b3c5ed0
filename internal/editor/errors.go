// Package editor provides pure edit operations over resume form state.
package editor

import (
	"errors"
	"fmt"
)

// ErrLastEntry is returned when removing the only remaining entry of a list.
var ErrLastEntry = errors.New("cannot remove the last entry")

// ErrUnknownOp is returned for an edit whose op names no operation.
var ErrUnknownOp = errors.New("unknown edit op")

// IndexError indicates an index outside the bounds of a list
type IndexError struct {
	List  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (len %d)", e.List, e.Index, e.Len)
}

// FieldError indicates an unknown field name or an edit the field does not accept
type FieldError struct {
	Entity  string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s field %q: %s", e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("unknown %s field %q", e.Entity, e.Field)
}
