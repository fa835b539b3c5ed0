package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Print an empty resume document",
	Long:  "Prints a resume JSON skeleton with one blank entry in every list, ready to fill in and pass to export or preview.",
	RunE:  runNew,
}

var (
	newVariant string
	newOutFile string
)

func init() {
	newCmd.Flags().StringVar(&newVariant, "variant", "detailed", "Resume layout: detailed or classic")
	newCmd.Flags().StringVarP(&newOutFile, "out", "o", "", "Write to this file instead of stdout")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	variant, err := types.ParseVariant(newVariant)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(types.NewResume(variant), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume JSON: %w", err)
	}
	data = append(data, '\n')

	if newOutFile != "" {
		if err := os.WriteFile(newOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write resume file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", newOutFile)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
