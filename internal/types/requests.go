package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateDraftRequest represents the request to open a new draft.
type CreateDraftRequest struct {
	Variant string  `json:"variant" validate:"omitempty,oneof=detailed classic"`
	Resume  *Resume `json:"resume,omitempty"`
}

// ExportRequest carries the path parameters of an export call.
type ExportRequest struct {
	Format string `validate:"required,oneof=pdf doc"`
}

// Validate validates the CreateDraftRequest using the validator.
func (r *CreateDraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
