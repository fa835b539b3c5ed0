package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a resume JSON file against the resume schema",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Path to resume JSON file (required)")
	_ = validateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	err := schemas.ValidateResumeFile(validateInput)
	if err == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
		return nil
	}

	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintValidationErrors(verr)
		return fmt.Errorf("validation failed: %d error(s)", len(verr.Errors))
	}
	return fmt.Errorf("validation failed: %w", err)
}
