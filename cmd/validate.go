// cmd/validate.go
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go_student_management/internal/model"
	"go_student_management/internal/service"
)

func newValidateCmd(a *app) *cobra.Command {
	var formPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Normalize, complete and validate a student form before submit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var form model.StudentForm
			if err := decodeJSONFile(formPath, &form); err != nil {
				return err
			}

			svc := service.NewStudentFormService(a.calc, a.validator)
			prepared, err := svc.Prepare(cmd.Context(), form)
			if err != nil {
				if errors.Is(err, model.ErrInvalidInput) {
					for _, msg := range a.validator.Messages(err) {
						fmt.Fprintln(cmd.ErrOrStderr(), msg)
					}
					return errors.New("入力エラーがあります")
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(prepared)
		},
	}
	cmd.Flags().StringVarP(&formPath, "form", "f", "", "JSON file with the student form")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}
