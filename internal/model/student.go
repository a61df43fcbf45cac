// internal/model/student.go
package model

import "strconv"

// 年齢の入力範囲
const (
	MinStudentAge = 16
	MaxStudentAge = 100
)

// StudentForm は受講生の登録・編集フォームの入力値。
// 文字列の必須チェックは前後の空白 (全角スペースを含む) を除いて行います。
type StudentForm struct {
	ID            *int         `json:"id,omitempty"`
	CourseID      *int         `json:"courseId,omitempty"`
	Name          string       `json:"name" validate:"notblank,mintrim=2"`
	KanaName      string       `json:"kanaName" validate:"notblank"`
	Nickname      string       `json:"nickname"`
	Email         string       `json:"email" validate:"notblank,email"`
	Area          string       `json:"area" validate:"notblank"`
	Age           *int         `json:"age" validate:"required,age_range"`
	Sex           string       `json:"sex" validate:"notblank"`
	Remark        string       `json:"remark"`
	CourseName    string       `json:"courseName" validate:"notblank"`
	CourseStartAt CalendarDate `json:"courseStartAt" validate:"required"`
	CourseEndAt   CalendarDate `json:"courseEndAt" validate:"required"`
}

// CourseRange はフォームのコース期間
func (f *StudentForm) CourseRange() DateRange {
	return DateRange{Start: f.CourseStartAt, End: f.CourseEndAt}
}

// Fields はフォームの値を画面上の並び順で返します (変更検知用)
func (f *StudentForm) Fields() []Field {
	age := ""
	if f.Age != nil {
		age = strconv.Itoa(*f.Age)
	}
	fields := make([]Field, 0, 13)
	if f.ID != nil {
		fields = append(fields, Field{Name: "id", Value: strconv.Itoa(*f.ID), Type: FieldTypeHidden})
	}
	if f.CourseID != nil {
		fields = append(fields, Field{Name: "courseId", Value: strconv.Itoa(*f.CourseID), Type: FieldTypeHidden})
	}
	return append(fields,
		Field{Name: FieldName, Value: f.Name},
		Field{Name: FieldKanaName, Value: f.KanaName},
		Field{Name: FieldNickname, Value: f.Nickname},
		Field{Name: FieldAge, Value: age},
		Field{Name: FieldSex, Value: f.Sex},
		Field{Name: FieldArea, Value: f.Area},
		Field{Name: FieldEmail, Value: f.Email},
		Field{Name: FieldCourseName, Value: f.CourseName},
		Field{Name: FieldCourseStartAt, Value: f.CourseStartAt.String()},
		Field{Name: FieldCourseEndAt, Value: f.CourseEndAt.String()},
		Field{Name: FieldRemark, Value: f.Remark},
	)
}
