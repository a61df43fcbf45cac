// internal/service/student_form_service.go
package service

import (
	"context"
	"log/slog"

	"go_student_management/internal/logging"
	"go_student_management/internal/model"
)

// FormValidator はフォームの入力チェック (validation.Validator が実装)
type FormValidator interface {
	ValidateStudentForm(form *model.StudentForm) error
}

// StudentFormService は送信直前のフォームを整えて検証します。
type StudentFormService interface {
	Prepare(ctx context.Context, form model.StudentForm) (*model.StudentForm, error)
}

type studentFormService struct {
	calc      *CourseScheduleCalculator
	validator FormValidator
}

func NewStudentFormService(calc *CourseScheduleCalculator, validator FormValidator) StudentFormService {
	return &studentFormService{
		calc:      calc,
		validator: validator,
	}
}

// Prepare は名前・カナ名を正規化し、終了日が空ならコースから補ってから検証します。
// 手入力された終了日は上書きしません。
func (s *studentFormService) Prepare(ctx context.Context, form model.StudentForm) (*model.StudentForm, error) {
	logger := logging.FromContext(ctx)

	form.Name = NormalizeForField(model.FieldName, form.Name)
	form.KanaName = NormalizeForField(model.FieldKanaName, form.KanaName)

	if form.CourseEndAt.IsZero() {
		if end, ok := s.calc.ComputeEndDate(form.CourseName, form.CourseStartAt); ok {
			form.CourseEndAt = end
			logger.Debug("Course end date filled", slog.String("course_end_at", end.String()))
		}
	}

	if err := s.validator.ValidateStudentForm(&form); err != nil {
		logger.Info("Student form validation failed", slog.Any("error", err))
		return &form, err
	}
	return &form, nil
}
