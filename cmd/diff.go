// cmd/diff.go
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go_student_management/internal/model"
	"go_student_management/internal/service"
)

// diffResult は diff コマンドの JSON 出力
type diffResult struct {
	SessionID   string               `json:"session_id"`
	Changes     []model.ChangeRecord `json:"changes"`
	Changed     map[string]bool      `json:"changed"`
	SummaryHTML string               `json:"summary_html,omitempty"`
}

func newDiffCmd(a *app) *cobra.Command {
	var (
		baselinePath string
		currentPath  string
		format       string
	)
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare current form fields against the baseline captured on load",
		Long:  "Both files hold a JSON array of {\"name\", \"value\", \"type\"} in form order. Fields of type hidden are ignored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseline, err := readFields(baselinePath)
			if err != nil {
				return err
			}
			current, err := readFields(currentPath)
			if err != nil {
				return err
			}

			tracker := service.NewFormChangeTracker(model.DefaultFieldLabels(), a.logger)
			if err := tracker.CaptureBaseline(baseline); err != nil {
				return err
			}
			changes, err := tracker.Diff(current)
			if err != nil {
				return err
			}

			if format == "text" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), service.FormatChangeSummary(changes))
				return err
			}

			html, err := service.RenderChangeSummary(changes)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(diffResult{
				SessionID:   tracker.ID().String(),
				Changes:     changes,
				Changed:     service.Changed(changes),
				SummaryHTML: html,
			})
		},
	}
	cmd.Flags().StringVarP(&baselinePath, "baseline", "b", "", "JSON file with the fields captured on load")
	cmd.Flags().StringVarP(&currentPath, "current", "c", "", "JSON file with the current fields")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or text")
	_ = cmd.MarkFlagRequired("baseline")
	_ = cmd.MarkFlagRequired("current")
	return cmd
}

func readFields(path string) ([]model.Field, error) {
	var fields []model.Field
	if err := decodeJSONFile(path, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
