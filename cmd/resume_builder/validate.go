package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Validate a resume document against the resume schema",
	Long:  "Validates against the built-in resume schema, or against --schema when given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "JSON Schema file to validate against (default: built-in resume schema)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := observability.NewPrinter(cmd.OutOrStdout())

	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, args[0])
	} else {
		err = schemas.ValidateResumeFile(args[0])
	}
	if err == nil {
		p.PrintValidation(nil)
		return nil
	}

	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}
	problems := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		problems = append(problems, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	p.PrintValidation(problems)
	return fmt.Errorf("validation failed with %d problems", len(problems))
}
