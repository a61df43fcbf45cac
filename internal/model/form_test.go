// internal/model/form_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldLabels_Label(t *testing.T) {
	labels := DefaultFieldLabels()
	assert.Equal(t, "名前", labels.Label("name"))
	assert.Equal(t, "終了日", labels.Label("courseEndAt"))
	assert.Equal(t, "unknownField", labels.Label("unknownField"), "表にない名前はそのまま")
}

func TestField_Trackable(t *testing.T) {
	assert.True(t, Field{Name: "name"}.Trackable())
	assert.True(t, Field{Name: "remark", Type: "textarea"}.Trackable())
	assert.False(t, Field{Name: "id", Type: FieldTypeHidden}.Trackable())
}

func TestStudentForm_Fields(t *testing.T) {
	id, age := 7, 20
	form := &StudentForm{
		ID:            &id,
		Name:          "山田　太郎",
		KanaName:      "ヤマダ　タロウ",
		Age:           &age,
		CourseName:    "Java入門",
		CourseStartAt: NewCalendarDate(2024, time.January, 15),
	}

	fields := form.Fields()

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "name", "kanaName", "nickname", "age", "sex", "area", "email",
		"courseName", "courseStartAt", "courseEndAt", "remark"}, names)
	assert.False(t, fields[0].Trackable(), "id は hidden")
	assert.Equal(t, "20", fields[4].Value)
	assert.Equal(t, "2024-01-15", fields[9].Value)
	assert.Equal(t, "", fields[10].Value)
}
