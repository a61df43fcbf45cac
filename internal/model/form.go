// internal/model/form.go
package model

// フォームのフィールド名
const (
	FieldName          = "name"
	FieldKanaName      = "kanaName"
	FieldNickname      = "nickname"
	FieldAge           = "age"
	FieldSex           = "sex"
	FieldArea          = "area"
	FieldEmail         = "email"
	FieldCourseName    = "courseName"
	FieldCourseStartAt = "courseStartAt"
	FieldCourseEndAt   = "courseEndAt"
	FieldRemark        = "remark"
)

// FieldTypeHidden は変更検知の対象外になる input type
const FieldTypeHidden = "hidden"

// EmptyValuePlaceholder は変更サマリーで空の値の代わりに表示する文字列
const EmptyValuePlaceholder = "（空）"

// Field はフォーム上の入力欄1つ分の値 (input / select / textarea)
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"` // "hidden" なら変更検知しない
}

// Trackable は変更検知の対象かどうか
func (f Field) Trackable() bool {
	return f.Type != FieldTypeHidden
}

// FieldSnapshot はフィールド名 → 値 (基準値)
type FieldSnapshot map[string]string

// ChangeRecord は変更されたフィールド1件分
type ChangeRecord struct {
	Name     string `json:"name"`  // 元のフィールド名 (changed マーカー用)
	Field    string `json:"field"` // 表示用ラベル
	Original string `json:"original"`
	Current  string `json:"current"`
}

// FieldLabels はフィールド名 → 日本語ラベルの表
type FieldLabels map[string]string

// DefaultFieldLabels は学生フォームの項目名
func DefaultFieldLabels() FieldLabels {
	return FieldLabels{
		FieldName:          "名前",
		FieldKanaName:      "カナ名",
		FieldNickname:      "ニックネーム",
		FieldAge:           "年齢",
		FieldSex:           "性別",
		FieldArea:          "地域",
		FieldEmail:         "メールアドレス",
		FieldCourseName:    "コース名",
		FieldCourseStartAt: "開始日",
		FieldCourseEndAt:   "終了日",
		FieldRemark:        "備考",
	}
}

// Label はラベルを返します。表にない名前はそのまま返します。
func (l FieldLabels) Label(name string) string {
	if label, ok := l[name]; ok {
		return label
	}
	return name
}
