// internal/service/mocks/FormValidator.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"go_student_management/internal/model"
)

// FormValidator は service.FormValidator のモック
type FormValidator struct {
	mock.Mock
}

func (m *FormValidator) ValidateStudentForm(form *model.StudentForm) error {
	args := m.Called(form)
	return args.Error(0)
}
