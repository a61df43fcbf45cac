// cmd/end_date.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go_student_management/internal/model"
)

func newEndDateCmd(a *app) *cobra.Command {
	var (
		course string
		start  string
	)
	cmd := &cobra.Command{
		Use:   "end-date",
		Short: "Calculate a course end date from the course name and start date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			end, err := a.calc.ComputeEndDateISO(course, start)
			if errors.Is(err, model.ErrSkip) {
				// 未入力なら何も出力しない (終了日欄はそのまま)
				a.logger.Info("Course name or start date is empty, skipped")
				return nil
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), end)
			return err
		},
	}
	cmd.Flags().StringVarP(&course, "course", "c", "", "Course name (e.g. Java入門)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Course start date (YYYY-MM-DD)")
	return cmd
}
