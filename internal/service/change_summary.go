// internal/service/change_summary.go
package service

import (
	"bytes"
	"fmt"
	"html/template"

	"go_student_management/internal/model"
)

// 値は html/template がエスケープする
var changeSummaryTmpl = template.Must(template.New("change-summary").Parse(
	`<h3>変更された項目 ({{len .}}件)</h3><ul class="change-list">` +
		`{{range .}}<li><strong>{{.Field}}</strong>: "{{.Original}}" → "{{.Current}}"</li>{{end}}` +
		`</ul>`))

// RenderChangeSummary は変更サマリーの HTML 断片を返します。
// 変更がなければ空文字 (サマリーは非表示にする)。
func RenderChangeSummary(records []model.ChangeRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := changeSummaryTmpl.Execute(&buf, records); err != nil {
		return "", fmt.Errorf("render change summary: %w", err)
	}
	return buf.String(), nil
}

// FormatChangeSummary はログやターミナル向けのテキスト版
func FormatChangeSummary(records []model.ChangeRecord) string {
	if len(records) == 0 {
		return ""
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "変更された項目 (%d件)\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&buf, "- %s: \"%s\" → \"%s\"\n", r.Field, r.Original, r.Current)
	}
	return buf.String()
}
