// cmd/normalize.go
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"go_student_management/internal/service"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		mode  string
		field string
	)
	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Normalize name / kana name input (hiragana to katakana, half-width to full-width spaces)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")

			var out string
			if field != "" {
				out = service.NormalizeForField(field, raw)
			} else {
				out = service.Normalize(raw, service.ParseNormalizeMode(mode))
			}
			a.logger.Debug("Normalized",
				slog.String("mode", mode),
				slog.String("field", field),
				slog.String("in", raw),
				slog.String("out", out),
			)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(service.ModePlain), "Normalize mode: plain or kana")
	cmd.Flags().StringVarP(&field, "field", "f", "", "Form field name (name, kanaName); overrides --mode")
	return cmd
}
