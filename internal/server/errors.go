// Package server provides the HTTP API and static client hosting for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPathTraversal indicates a static file request that escapes the root
type ErrPathTraversal struct {
	Path string
}

func (e *ErrPathTraversal) Error() string {
	return fmt.Sprintf("path escapes static root: %s", e.Path)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		traversalErr  *ErrPathTraversal
		schemaErr     *schemas.ValidationError
		fieldsErr     validator.ValidationErrors
		fieldErr      *editor.FieldError
		indexErr      *editor.IndexError
		exportErr     *export.Error
	)

	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrLastEntry):
		return http.StatusConflict
	case errors.Is(err, editor.ErrUnknownOp),
		errors.As(err, &validationErr), errors.As(err, &traversalErr),
		errors.As(err, &schemaErr), errors.As(err, &fieldsErr),
		errors.As(err, &fieldErr), errors.As(err, &indexErr):
		return http.StatusBadRequest
	case errors.As(err, &exportErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
